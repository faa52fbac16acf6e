package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneseo/congestion-collector/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testCatalog = domain.NewCatalog([]domain.Area{
	{Name: "강남역", Lat: 37.4980854, Lng: 127.0276532},
	{Name: "잠실 관광특구", Lat: 37.5130731, Lng: 127.1001997},
})

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "congestion.db")
	store, err := Open(path, testCatalog, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "congestion.db")

	store, err := Open(path, testCatalog, discardLogger())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.InsertBatch(ctx, []domain.CongestionRecord{
		{Area: "강남역", CongestionLevel: domain.LevelNormal, Timestamp: "2026-08-31T05:00:00Z"},
	}))
	require.NoError(t, store.Close())

	// Reopening must keep existing rows.
	store, err = Open(path, testCatalog, discardLogger())
	require.NoError(t, err)
	defer store.Close()

	records, err := store.QueryAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestInsertBatchDenormalizesCoordinates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertBatch(ctx, []domain.CongestionRecord{
		{Area: "강남역", CongestionLevel: domain.LevelCrowded, Timestamp: "2026-08-31T05:30:00Z"},
		{Area: "미지의 영역", CongestionLevel: domain.LevelRelaxed, Timestamp: "2026-08-31T05:30:00Z"},
	}))

	records, err := store.QueryAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	byArea := make(map[string]domain.CongestionRecord, len(records))
	for _, rec := range records {
		assert.Positive(t, rec.ID)
		byArea[rec.Area] = rec
	}

	known := byArea["강남역"]
	require.NotNil(t, known.Latitude)
	require.NotNil(t, known.Longitude)
	assert.Equal(t, 37.4980854, *known.Latitude)
	assert.Equal(t, 127.0276532, *known.Longitude)

	unknown := byArea["미지의 영역"]
	assert.Nil(t, unknown.Latitude)
	assert.Nil(t, unknown.Longitude)
}

func TestInsertBatchEmptyIsNoop(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.InsertBatch(context.Background(), nil))

	records, err := store.QueryAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestQueryLatest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertBatch(ctx, []domain.CongestionRecord{
		{Area: "강남역", CongestionLevel: domain.LevelNormal, Timestamp: "2026-08-31T05:00:00Z"},
		{Area: "강남역", CongestionLevel: domain.LevelCrowded, Timestamp: "2026-08-31T06:00:00Z",
			PopulationMin: 28000, PopulationMax: 30000},
		{Area: "잠실 관광특구", CongestionLevel: domain.LevelRelaxed, Timestamp: "2026-08-31T07:00:00Z"},
	}))

	latest, err := store.QueryLatest(ctx, "강남역")
	require.NoError(t, err)
	assert.Equal(t, domain.LevelCrowded, latest.CongestionLevel)
	assert.Equal(t, "2026-08-31T06:00:00Z", latest.Timestamp)
	assert.Equal(t, 28000, latest.PopulationMin)
	assert.Equal(t, 30000, latest.PopulationMax)
}

func TestQueryLatestNoHistory(t *testing.T) {
	store := newTestStore(t)

	_, err := store.QueryLatest(context.Background(), "강남역")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckReadiness(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.CheckReadiness(context.Background()))
}

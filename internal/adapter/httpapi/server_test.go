package httpapi_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneseo/congestion-collector/internal/adapter/httpapi"
	"github.com/oneseo/congestion-collector/internal/domain"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

// mockHistory serves canned per-area records.
type mockHistory struct {
	records []domain.CongestionRecord
	latest  map[string]domain.CongestionRecord
}

func (m *mockHistory) QueryAll(_ context.Context) ([]domain.CongestionRecord, error) {
	return m.records, nil
}

func (m *mockHistory) QueryLatest(_ context.Context, area string) (domain.CongestionRecord, error) {
	rec, ok := m.latest[area]
	if !ok {
		return domain.CongestionRecord{}, fmt.Errorf("%w: %q", domain.ErrNotFound, area)
	}
	return rec, nil
}

var testCatalog = domain.NewCatalog([]domain.Area{
	{Name: "강남역", Lat: 37.4980854, Lng: 127.0276532},
	{Name: "잠실 관광특구", Lat: 37.5130731, Lng: 127.1001997},
})

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(readyErr error, history *mockHistory) *httpapi.Server {
	if history == nil {
		history = &mockHistory{}
	}
	resolver := domain.NewResolver(testCatalog, nil, discardLogger())
	return httpapi.NewServer(":0", &mockReadiness{err: readyErr}, testCatalog, history, resolver, discardLogger())
}

func do(srv *httpapi.Server, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	rec := do(newTestServer(nil, nil), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	rec := do(newTestServer(nil, nil), "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	rec := do(newTestServer(fmt.Errorf("database unreachable"), nil), "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "database unreachable", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	rec := do(newTestServer(nil, nil), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestAreasEndpoint(t *testing.T) {
	rec := do(newTestServer(nil, nil), "/api/areas")

	assert.Equal(t, http.StatusOK, rec.Code)

	var areas []domain.Area
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &areas))
	require.Len(t, areas, 2)
	assert.Equal(t, "강남역", areas[0].Name)
}

func TestRecordsEndpoint(t *testing.T) {
	history := &mockHistory{
		records: []domain.CongestionRecord{
			{ID: 1, Area: "강남역", CongestionLevel: domain.LevelCrowded, Timestamp: "2026-08-31T05:30:00Z"},
		},
	}
	rec := do(newTestServer(nil, history), "/api/records")

	assert.Equal(t, http.StatusOK, rec.Code)

	var records []domain.CongestionRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, domain.LevelCrowded, records[0].CongestionLevel)
}

func TestRecordsEndpointEmptyHistory(t *testing.T) {
	rec := do(newTestServer(nil, nil), "/api/records")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestLatestEndpoint(t *testing.T) {
	history := &mockHistory{
		latest: map[string]domain.CongestionRecord{
			"강남역": {ID: 7, Area: "강남역", CongestionLevel: domain.LevelNormal, Timestamp: "2026-08-31T06:00:00Z"},
		},
	}
	rec := do(newTestServer(nil, history), "/api/areas/강남역/latest")

	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.CongestionRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
}

func TestLatestEndpointNoHistory(t *testing.T) {
	rec := do(newTestServer(nil, nil), "/api/areas/강남역/latest")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResolveEndpoint(t *testing.T) {
	rec := do(newTestServer(nil, nil), "/api/resolve?query=강남역")

	assert.Equal(t, http.StatusOK, rec.Code)

	var area domain.Area
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &area))
	assert.Equal(t, "강남역", area.Name)
}

func TestResolveEndpointMissingQuery(t *testing.T) {
	rec := do(newTestServer(nil, nil), "/api/resolve")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveEndpointNotFound(t *testing.T) {
	rec := do(newTestServer(nil, nil), "/api/resolve?query=모르는+곳")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatsEndpoint(t *testing.T) {
	history := &mockHistory{
		latest: map[string]domain.CongestionRecord{
			"강남역":     {Area: "강남역", CongestionLevel: domain.LevelCrowded},
			"잠실 관광특구": {Area: "잠실 관광특구", CongestionLevel: domain.LevelCrowded},
		},
	}
	rec := do(newTestServer(nil, history), "/api/stats")

	assert.Equal(t, http.StatusOK, rec.Code)

	var stats domain.AggregateStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.Counts[domain.LevelCrowded])
	assert.Zero(t, stats.Counts[domain.LevelRelaxed])
}

func TestStatusEndpoint(t *testing.T) {
	history := &mockHistory{
		latest: map[string]domain.CongestionRecord{
			"강남역": {Area: "강남역", CongestionLevel: domain.LevelCrowded, Timestamp: "2026-08-31T06:00:00Z",
				PopulationMin: 28000, PopulationMax: 30000},
		},
	}
	rec := do(newTestServer(nil, history), "/api/status")

	assert.Equal(t, http.StatusOK, rec.Code)

	var statuses []domain.AreaStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &statuses))
	require.Len(t, statuses, 1, "areas without history are omitted")
	assert.Equal(t, "강남역", statuses[0].Area.Name)
	assert.Equal(t, 1.0, statuses[0].Weight)
	assert.Equal(t, domain.ColorRed, statuses[0].Color)
	assert.Equal(t, 28000, statuses[0].PopulationMin)
	assert.Equal(t, 30000, statuses[0].PopulationMax)
}

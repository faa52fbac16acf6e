package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneseo/congestion-collector/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	lat, lng := 37.5139, 127.1006
	rec := domain.CongestionRecord{
		Area:            "잠실 관광특구",
		CongestionLevel: domain.LevelCrowded,
		Timestamp:       "2026-08-31T05:30:00Z",
		Latitude:        &lat,
		Longitude:       &lng,
	}

	msg, err := serializeToMessage(rec)
	require.NoError(t, err)

	assert.Equal(t, []byte("잠실 관광특구"), msg.Key)
	assert.Contains(t, string(msg.Value), `"congestion_level":"CROWDED"`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "congestion_level", msg.Headers[0].Key)
	assert.Equal(t, []byte("CROWDED"), msg.Headers[0].Value)
	assert.Equal(t, "observed_at", msg.Headers[1].Key)
	assert.Equal(t, []byte("2026-08-31T05:30:00Z"), msg.Headers[1].Value)
}

func TestPublishBatchEmptyIsNoop(t *testing.T) {
	p := &Publisher{}
	require.NoError(t, p.PublishBatch(context.Background(), nil))
}

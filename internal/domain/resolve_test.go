package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockGeocoder counts calls and returns a canned result.
type mockGeocoder struct {
	result GeocodingResult
	err    error
	calls  int
}

func (m *mockGeocoder) Geocode(_ context.Context, _ string) (GeocodingResult, error) {
	m.calls++
	return m.result, m.err
}

func TestResolveCatalogNameShortCircuits(t *testing.T) {
	geo := &mockGeocoder{result: GeocodingResult{Lat: 1, Lng: 1}}
	r := NewResolver(DefaultCatalog(), geo, discardLogger())

	area, err := r.Resolve(context.Background(), "강남역")
	require.NoError(t, err)
	assert.Equal(t, "강남역", area.Name)
	assert.Zero(t, geo.calls, "catalog names never hit the geocoder")
}

func TestResolveEveryCatalogNameIsIdentity(t *testing.T) {
	c := DefaultCatalog()
	r := NewResolver(c, nil, discardLogger())

	for _, area := range c.Areas() {
		got, err := r.Resolve(context.Background(), area.Name)
		require.NoError(t, err)
		assert.Equal(t, area, got)
	}
}

func TestResolveGeocodesFreeText(t *testing.T) {
	// Coordinates right next to 잠실 관광특구.
	geo := &mockGeocoder{result: GeocodingResult{Lat: 37.5131, Lng: 127.1002}}
	r := NewResolver(DefaultCatalog(), geo, discardLogger())

	area, err := r.Resolve(context.Background(), "롯데월드 근처 카페")
	require.NoError(t, err)
	assert.Equal(t, "잠실 관광특구", area.Name)
	assert.Equal(t, 1, geo.calls)
}

func TestResolveGeocoderErrorBecomesNotFound(t *testing.T) {
	geo := &mockGeocoder{err: errors.New("api down")}
	r := NewResolver(DefaultCatalog(), geo, discardLogger())

	_, err := r.Resolve(context.Background(), "어딘가")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestResolveNoMatchBecomesNotFound(t *testing.T) {
	geo := &mockGeocoder{} // zero result means no match
	r := NewResolver(DefaultCatalog(), geo, discardLogger())

	_, err := r.Resolve(context.Background(), "존재하지 않는 장소")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestResolveWithoutGeocoder(t *testing.T) {
	r := NewResolver(DefaultCatalog(), nil, discardLogger())

	area, err := r.Resolve(context.Background(), "강남역")
	require.NoError(t, err)
	assert.Equal(t, "강남역", area.Name)

	_, err = r.Resolve(context.Background(), "자유 텍스트")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

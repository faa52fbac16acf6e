package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrLocationNotFound is returned when free text matches no catalog entry
// and the geocoding collaborator has no result for it either.
var ErrLocationNotFound = errors.New("location not found")

// GeocodingResult is a single best-match coordinate pair for free text.
// The zero value means the provider had no match.
type GeocodingResult struct {
	Lat float64
	Lng float64
}

// Geocoder looks up coordinates for free-text locations.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (GeocodingResult, error)
}

// Resolver maps free-text locations to the nearest catalog area.
type Resolver struct {
	catalog  *Catalog
	geocoder Geocoder
	logger   *slog.Logger
}

// NewResolver creates a Resolver. Pass a nil geocoder to resolve catalog
// names only.
func NewResolver(catalog *Catalog, geocoder Geocoder, logger *slog.Logger) *Resolver {
	return &Resolver{
		catalog:  catalog,
		geocoder: geocoder,
		logger:   logger,
	}
}

// Resolve returns the catalog area nearest to freeText. A catalog name
// resolves to itself without touching the geocoder. Anything else is
// geocoded, then matched against every catalog entry by haversine distance;
// exact-distance ties go to the earlier catalog entry.
func (r *Resolver) Resolve(ctx context.Context, freeText string) (Area, error) {
	if area, ok := r.catalog.Lookup(freeText); ok {
		return area, nil
	}

	if r.geocoder == nil {
		return Area{}, fmt.Errorf("%w: %q", ErrLocationNotFound, freeText)
	}

	result, err := r.geocoder.Geocode(ctx, freeText)
	if err != nil {
		r.logger.Warn("geocoding failed", "query", freeText, "error", err)
		return Area{}, fmt.Errorf("%w: %q", ErrLocationNotFound, freeText)
	}
	if result == (GeocodingResult{}) {
		return Area{}, fmt.Errorf("%w: %q", ErrLocationNotFound, freeText)
	}

	nearest, ok := r.catalog.Nearest(result.Lat, result.Lng)
	if !ok {
		return Area{}, fmt.Errorf("%w: empty catalog", ErrLocationNotFound)
	}
	return nearest, nil
}

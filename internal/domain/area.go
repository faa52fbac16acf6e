package domain

import "math"

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// Area is one catalog entry: a named location with fixed WGS-84 coordinates.
type Area struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Catalog is an ordered, immutable set of areas with O(1) name lookup.
// Iteration order is the declaration order of the backing table, which keeps
// nearest-neighbor tie-breaking deterministic.
type Catalog struct {
	areas []Area
	index map[string]int
}

// NewCatalog builds a catalog from the given areas, preserving order.
// Duplicate names keep the first occurrence.
func NewCatalog(areas []Area) *Catalog {
	c := &Catalog{
		areas: make([]Area, 0, len(areas)),
		index: make(map[string]int, len(areas)),
	}
	for _, a := range areas {
		if _, dup := c.index[a.Name]; dup {
			continue
		}
		c.index[a.Name] = len(c.areas)
		c.areas = append(c.areas, a)
	}
	return c
}

// Lookup returns the area registered under name.
func (c *Catalog) Lookup(name string) (Area, bool) {
	i, ok := c.index[name]
	if !ok {
		return Area{}, false
	}
	return c.areas[i], true
}

// Areas returns the catalog entries in declaration order. Callers must not
// mutate the returned slice.
func (c *Catalog) Areas() []Area {
	return c.areas
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.areas)
}

// Nearest returns the catalog entry with the minimum haversine distance to
// the given coordinate. Exact-distance ties go to the earlier entry. Returns
// false only for an empty catalog.
func (c *Catalog) Nearest(lat, lng float64) (Area, bool) {
	if len(c.areas) == 0 {
		return Area{}, false
	}
	best := c.areas[0]
	bestDist := Haversine(lat, lng, best.Lat, best.Lng)
	for _, a := range c.areas[1:] {
		if d := Haversine(lat, lng, a.Lat, a.Lng); d < bestDist {
			best = a
			bestDist = d
		}
	}
	return best, true
}

// Haversine returns the great-circle distance in kilometers between two
// WGS-84 coordinates given in degrees. Symmetric, and exactly 0 for
// identical points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

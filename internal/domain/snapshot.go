package domain

import "errors"

// ValueUnknown is the sentinel substituted for absent string leaves.
const ValueUnknown = "unknown"

// ErrNotFound is returned by queries that match no stored record.
var ErrNotFound = errors.New("not found")

// RawCityData is the unwrapped CITYDATA envelope as decoded JSON.
type RawCityData map[string]any

// Forecast is one projected population window for an area.
type Forecast struct {
	Time          string          `json:"time"`
	Level         CongestionLevel `json:"congestion_level"`
	PopulationMin int             `json:"population_min"`
	PopulationMax int             `json:"population_max"`
}

// GenderRatio is the male/female population split in percent.
type GenderRatio struct {
	Male   float64 `json:"male"`
	Female float64 `json:"female"`
}

// PopulationSnapshot is the normalized live-population record for one area.
// It is always fully populated: absent source fields carry their defaults.
type PopulationSnapshot struct {
	CurrentTime       string             `json:"current_time"`
	CongestionLevel   CongestionLevel    `json:"congestion_level"`
	CongestionMessage string             `json:"congestion_message"`
	PopulationMin     int                `json:"population_min"`
	PopulationMax     int                `json:"population_max"`
	GenderRatio       GenderRatio        `json:"gender_ratio"`
	AgeDistribution   map[string]float64 `json:"age_distribution"`
	Forecasts         []Forecast         `json:"forecasts"`
}

// DefaultPopulationSnapshot returns the all-defaults population record.
func DefaultPopulationSnapshot() PopulationSnapshot {
	return PopulationSnapshot{
		CurrentTime:       ValueUnknown,
		CongestionLevel:   LevelUnknown,
		CongestionMessage: ValueUnknown,
		GenderRatio:       GenderRatio{},
		AgeDistribution:   map[string]float64{"20s": 0, "30s": 0, "40s": 0},
		Forecasts:         []Forecast{},
	}
}

// TrafficSnapshot is the normalized road-traffic record for one area.
type TrafficSnapshot struct {
	Speed   string `json:"speed"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DefaultTrafficSnapshot returns the all-defaults traffic record.
func DefaultTrafficSnapshot() TrafficSnapshot {
	return TrafficSnapshot{
		Speed:   ValueUnknown,
		Status:  ValueUnknown,
		Message: ValueUnknown,
	}
}

// FoodBusiness is the payment activity of one food-service category.
// Counts stay as upstream strings; they are display values, never summed.
type FoodBusiness struct {
	Category        string          `json:"category"`
	CongestionLevel CongestionLevel `json:"congestion_level"`
	PaymentCount    string          `json:"payment_count"`
	StoreCount      string          `json:"store_count"`
}

// CommercialSnapshot is the normalized commercial-activity record for one
// area, filtered to the food-service category whitelist.
type CommercialSnapshot struct {
	CongestionLevel CongestionLevel `json:"congestion_level"`
	FoodBusinesses  []FoodBusiness  `json:"food_businesses"`
}

// DefaultCommercialSnapshot returns the all-defaults commercial record.
func DefaultCommercialSnapshot() CommercialSnapshot {
	return CommercialSnapshot{
		CongestionLevel: LevelUnknown,
		FoodBusinesses:  []FoodBusiness{},
	}
}

// CongestionRecord is one persisted point-in-time observation. Rows are
// append-only; coordinates are denormalized from the catalog at insert time
// and are nil for areas the catalog does not know.
type CongestionRecord struct {
	ID              int64           `json:"id"`
	Area            string          `json:"area"`
	CongestionLevel CongestionLevel `json:"congestion_level"`
	Timestamp       string          `json:"timestamp"`
	PopulationMin   int             `json:"population_min"`
	PopulationMax   int             `json:"population_max"`
	Latitude        *float64        `json:"latitude"`
	Longitude       *float64        `json:"longitude"`
}

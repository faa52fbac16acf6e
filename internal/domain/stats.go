package domain

// AggregateStats summarizes congestion levels across the catalog at one
// point in time. Computed on demand, never persisted.
type AggregateStats struct {
	Total  int                     `json:"total"`
	Counts map[CongestionLevel]int `json:"counts"`
}

// Aggregate tallies levels over the fixed vocabulary. Levels outside the
// vocabulary count as UNKNOWN. An empty input yields all-zero counts.
func Aggregate(levels []CongestionLevel) AggregateStats {
	stats := AggregateStats{
		Counts: map[CongestionLevel]int{
			LevelRelaxed:         0,
			LevelNormal:          0,
			LevelSlightlyCrowded: 0,
			LevelCrowded:         0,
			LevelUnknown:         0,
		},
	}
	for _, level := range levels {
		if _, known := stats.Counts[level]; !known {
			level = LevelUnknown
		}
		stats.Counts[level]++
		stats.Total++
	}
	return stats
}

// AreaStatus is the visualization-ready view of one area: its coordinates
// plus the congestion level mapped to heatmap weight and display color.
type AreaStatus struct {
	Area          Area            `json:"area"`
	Level         CongestionLevel `json:"congestion_level"`
	Weight        float64         `json:"weight"`
	Color         Color           `json:"color"`
	PopulationMin int             `json:"population_min"`
	PopulationMax int             `json:"population_max"`
}

// BuildAreaStatus derives the heatmap view of one area from its normalized
// population snapshot.
func BuildAreaStatus(area Area, pop PopulationSnapshot) AreaStatus {
	return AreaStatus{
		Area:          area,
		Level:         pop.CongestionLevel,
		Weight:        Weight(pop.CongestionLevel),
		Color:         ColorFor(pop.CongestionLevel),
		PopulationMin: pop.PopulationMin,
		PopulationMax: pop.PopulationMax,
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	t.Run("empty input yields all-zero counts", func(t *testing.T) {
		stats := Aggregate(nil)

		assert.Zero(t, stats.Total)
		assert.Len(t, stats.Counts, 5)
		for level, count := range stats.Counts {
			assert.Zero(t, count, "count for %s", level)
		}
	})

	t.Run("tallies known levels", func(t *testing.T) {
		stats := Aggregate([]CongestionLevel{
			LevelCrowded, LevelCrowded, LevelNormal, LevelRelaxed,
		})

		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, 2, stats.Counts[LevelCrowded])
		assert.Equal(t, 1, stats.Counts[LevelNormal])
		assert.Equal(t, 1, stats.Counts[LevelRelaxed])
		assert.Zero(t, stats.Counts[LevelSlightlyCrowded])
	})

	t.Run("folds out-of-vocabulary values into unknown", func(t *testing.T) {
		stats := Aggregate([]CongestionLevel{
			LevelUnknown, CongestionLevel("매우 혼잡"), CongestionLevel(""),
		})

		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 3, stats.Counts[LevelUnknown])
		assert.Len(t, stats.Counts, 5, "no new buckets appear")
	})
}

func TestBuildAreaStatus(t *testing.T) {
	area := Area{Name: "강남역", Lat: 37.4980854, Lng: 127.0276532}
	pop := PopulationSnapshot{
		CongestionLevel: LevelCrowded,
		PopulationMin:   42000,
		PopulationMax:   44000,
	}

	status := BuildAreaStatus(area, pop)

	assert.Equal(t, area, status.Area)
	assert.Equal(t, LevelCrowded, status.Level)
	assert.Equal(t, 1.0, status.Weight)
	assert.Equal(t, ColorRed, status.Color)
	assert.Equal(t, 42000, status.PopulationMin)
	assert.Equal(t, 44000, status.PopulationMax)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCongestionLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  CongestionLevel
	}{
		{"korean relaxed", "여유", LevelRelaxed},
		{"korean normal", "보통", LevelNormal},
		{"korean slightly crowded", "약간 붐빔", LevelSlightlyCrowded},
		{"korean crowded", "붐빔", LevelCrowded},
		{"canonical round trip", "CROWDED", LevelCrowded},
		{"whitespace trimmed", "  붐빔  ", LevelCrowded},
		{"empty", "", LevelUnknown},
		{"garbage", "매우 혼잡", LevelUnknown},
		{"lowercase not accepted", "crowded", LevelUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCongestionLevel(tt.input))
		})
	}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		level CongestionLevel
		want  float64
	}{
		{LevelRelaxed, 0.2},
		{LevelNormal, 0.4},
		{LevelSlightlyCrowded, 0.7},
		{LevelCrowded, 1.0},
		{LevelUnknown, 0.1},
		{CongestionLevel("bogus"), 0.1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Weight(tt.level), "weight of %s", tt.level)
	}
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		level CongestionLevel
		want  Color
	}{
		{LevelRelaxed, ColorGreen},
		{LevelNormal, ColorBlue},
		{LevelSlightlyCrowded, ColorOrange},
		{LevelCrowded, ColorRed},
		{LevelUnknown, ColorGray},
		{CongestionLevel("bogus"), ColorGray},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColorFor(tt.level), "color of %s", tt.level)
	}
}

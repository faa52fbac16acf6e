package domain

import "strings"

// CongestionLevel is the canonical five-value occupancy vocabulary.
type CongestionLevel string

const (
	LevelRelaxed         CongestionLevel = "RELAXED"
	LevelNormal          CongestionLevel = "NORMAL"
	LevelSlightlyCrowded CongestionLevel = "SLIGHTLY_CROWDED"
	LevelCrowded         CongestionLevel = "CROWDED"
	LevelUnknown         CongestionLevel = "UNKNOWN"
)

// Color is the display bucket a congestion level renders as on the heatmap.
type Color string

const (
	ColorGreen  Color = "GREEN"
	ColorBlue   Color = "BLUE"
	ColorOrange Color = "ORANGE"
	ColorRed    Color = "RED"
	ColorGray   Color = "GRAY"
)

// ParseCongestionLevel maps an upstream congestion label to the canonical
// vocabulary. The citydata API reports levels in Korean; canonical values
// also parse to themselves so replayed records survive a round trip.
// Anything unrecognized is UNKNOWN.
func ParseCongestionLevel(s string) CongestionLevel {
	switch strings.TrimSpace(s) {
	case "여유", string(LevelRelaxed):
		return LevelRelaxed
	case "보통", string(LevelNormal):
		return LevelNormal
	case "약간 붐빔", string(LevelSlightlyCrowded):
		return LevelSlightlyCrowded
	case "붐빔", string(LevelCrowded):
		return LevelCrowded
	default:
		return LevelUnknown
	}
}

// Weight converts a congestion level to a heatmap weight in [0, 1].
// Unknown levels get a faint 0.1 so they still render.
func Weight(level CongestionLevel) float64 {
	switch level {
	case LevelRelaxed:
		return 0.2
	case LevelNormal:
		return 0.4
	case LevelSlightlyCrowded:
		return 0.7
	case LevelCrowded:
		return 1.0
	default:
		return 0.1
	}
}

// ColorFor returns the display color for a congestion level.
func ColorFor(level CongestionLevel) Color {
	switch level {
	case LevelRelaxed:
		return ColorGreen
	case LevelNormal:
		return ColorBlue
	case LevelSlightlyCrowded:
		return ColorOrange
	case LevelCrowded:
		return ColorRed
	default:
		return ColorGray
	}
}

package domain

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// foodCategories is the fixed whitelist of citydata RSB_MID_CTGR values
// treated as food service. Everything else is dropped, not errored.
var foodCategories = map[string]bool{
	"한식":          true,
	"일식/중식/양식":    true,
	"제과/커피/패스트푸드": true,
	"기타요식":        true,
}

// NormalizePopulation extracts the live population block from a citydata
// payload. Every field defaults independently, so one malformed leaf never
// blanks the rest of the record.
func NormalizePopulation(data RawCityData, logger *slog.Logger) PopulationSnapshot {
	snap := DefaultPopulationSnapshot()

	live := firstObject(data["LIVE_PPLTN_STTS"])
	if live == nil {
		logger.Warn("live population block missing, using defaults")
		return snap
	}

	snap.CurrentTime = stringAt(live, "PPLTN_TIME", ValueUnknown)
	snap.CongestionLevel = ParseCongestionLevel(stringAt(live, "AREA_CONGEST_LVL", ""))
	snap.CongestionMessage = stringAt(live, "AREA_CONGEST_MSG", ValueUnknown)
	snap.PopulationMin = intAt(live, "AREA_PPLTN_MIN")
	snap.PopulationMax = intAt(live, "AREA_PPLTN_MAX")
	if snap.PopulationMax < snap.PopulationMin {
		snap.PopulationMax = snap.PopulationMin
	}
	snap.GenderRatio = GenderRatio{
		Male:   floatAt(live, "MALE_PPLTN_RATE"),
		Female: floatAt(live, "FEMALE_PPLTN_RATE"),
	}
	snap.AgeDistribution = map[string]float64{
		"20s": floatAt(live, "PPLTN_RATE_20"),
		"30s": floatAt(live, "PPLTN_RATE_30"),
		"40s": floatAt(live, "PPLTN_RATE_40"),
	}

	if forecasts, ok := live["FCST_PPLTN"].([]any); ok {
		for _, f := range forecasts {
			obj, _ := f.(map[string]any)
			// A non-object entry still yields a defaulted forecast slot;
			// entries are mapped independently, never dropped.
			snap.Forecasts = append(snap.Forecasts, Forecast{
				Time:          stringAt(obj, "FCST_TIME", ValueUnknown),
				Level:         ParseCongestionLevel(stringAt(obj, "FCST_CONGEST_LVL", "")),
				PopulationMin: intAt(obj, "FCST_PPLTN_MIN"),
				PopulationMax: intAt(obj, "FCST_PPLTN_MAX"),
			})
		}
	}

	return snap
}

// NormalizeTraffic extracts the averaged road-traffic block. Any absent leaf
// yields the "unknown" sentinel.
func NormalizeTraffic(data RawCityData, logger *slog.Logger) TrafficSnapshot {
	avg := objectAt(objectAt(data, "ROAD_TRAFFIC_STTS"), "AVG_ROAD_DATA")
	if avg == nil {
		logger.Warn("road traffic block missing, using defaults")
		return DefaultTrafficSnapshot()
	}
	return TrafficSnapshot{
		Speed:   stringAt(avg, "ROAD_TRAFFIC_SPD", ValueUnknown),
		Status:  stringAt(avg, "ROAD_TRAFFIC_IDX", ValueUnknown),
		Message: stringAt(avg, "ROAD_MSG", ValueUnknown),
	}
}

// NormalizeCommercial extracts the commercial-activity block, keeping only
// the food-service categories. The upstream CMRCL_RSB field is sometimes not
// a sequence; that shape violation logs a warning and falls back to the
// all-defaults snapshot instead of iterating garbage.
func NormalizeCommercial(data RawCityData, logger *slog.Logger) CommercialSnapshot {
	commercial := objectAt(data, "LIVE_CMRCL_STTS")
	if commercial == nil {
		logger.Warn("commercial block has unexpected shape",
			"type", fmt.Sprintf("%T", data["LIVE_CMRCL_STTS"]))
		return DefaultCommercialSnapshot()
	}

	raw, present := commercial["CMRCL_RSB"]
	businesses, ok := raw.([]any)
	if present && !ok {
		logger.Warn("commercial business list has unexpected shape",
			"type", fmt.Sprintf("%T", raw))
		return DefaultCommercialSnapshot()
	}

	snap := DefaultCommercialSnapshot()
	snap.CongestionLevel = ParseCongestionLevel(stringAt(commercial, "AREA_CMRCL_LVL", ""))

	for _, b := range businesses {
		biz, ok := b.(map[string]any)
		if !ok {
			continue
		}
		category := stringAt(biz, "RSB_MID_CTGR", "")
		if !foodCategories[category] {
			continue
		}
		snap.FoodBusinesses = append(snap.FoodBusinesses, FoodBusiness{
			Category:        category,
			CongestionLevel: ParseCongestionLevel(stringAt(biz, "RSB_PAYMENT_LVL", "")),
			PaymentCount:    stringAt(biz, "RSB_SH_PAYMENT_CNT", "0"),
			StoreCount:      stringAt(biz, "RSB_MCT_CNT", "0"),
		})
	}

	return snap
}

// firstObject returns the first element of a JSON array value if that
// element is an object, else nil.
func firstObject(v any) map[string]any {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return nil
	}
	obj, _ := arr[0].(map[string]any)
	return obj
}

// objectAt returns m[key] as an object, or nil when absent or mistyped.
// Safe on a nil map.
func objectAt(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	obj, _ := m[key].(map[string]any)
	return obj
}

// stringAt returns m[key] as a trimmed string, coercing JSON numbers.
// Returns fallback for nil maps, absent keys, empty strings, and any other
// type.
func stringAt(m map[string]any, key, fallback string) string {
	if m == nil {
		return fallback
	}
	switch v := m[key].(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fallback
}

// intAt parses m[key] as an integer, accepting both JSON numbers and the
// numeric strings the citydata feed usually sends. Returns 0 on failure.
func intAt(m map[string]any, key string) int {
	return int(floatAt(m, key))
}

// floatAt parses m[key] as a float64, returning 0 on failure.
func floatAt(m map[string]any, key string) float64 {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

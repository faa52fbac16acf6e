// Package domain models Seoul citydata area-occupancy telemetry.
//
// # Data Source
//
// Live area telemetry comes from the Seoul open data portal "citydata"
// endpoint, one request per named area:
//
//	{base}/{key}/json/citydata/1/5/{percent-encoded area name}
//
// Every valid response wraps its payload in a top-level CITYDATA envelope
// key. The feed is unreliable in practice: intermittent 5xx responses,
// responses missing the envelope, and fields that change type between
// requests (CMRCL_RSB has been observed as both an array and an object).
// All normalization in this package is therefore total: a malformed or
// absent field yields its documented default, never an error.
//
// # Congestion Vocabulary
//
// The API reports occupancy in Korean. The canonical five-value vocabulary
// used throughout this service maps as:
//
//	여유        → RELAXED
//	보통        → NORMAL
//	약간 붐빔   → SLIGHTLY_CROWDED
//	붐빔        → CROWDED
//	anything else → UNKNOWN
//
// Canonical English values also parse to themselves so persisted or replayed
// records survive a round trip.
//
// # Value Quirks
//
// Numeric leaves (population counts, rates) arrive as JSON strings more often
// than as numbers ("AREA_PPLTN_MIN": "30000"). Extraction helpers coerce both
// forms and default to zero on anything else.
//
// Timestamps (PPLTN_TIME, FCST_TIME) are "2006-01-02 15:04" wall-clock
// strings in Asia/Seoul with no zone designator. The collector normalizes
// them to RFC 3339 UTC before persisting so lexicographic ordering on the
// stored text matches chronological ordering.
//
// # Commercial Categories
//
// Commercial telemetry (LIVE_CMRCL_STTS.CMRCL_RSB) lists payment activity per
// business category. Only the four food-service categories are retained:
// 한식, 일식/중식/양식, 제과/커피/패스트푸드, 기타요식. Unrecognized
// categories are dropped silently; they are expected, not an error.
package domain

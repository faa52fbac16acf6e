// Command genmock generates mock citydata envelope fixtures for every
// catalog area. The fixtures feed local mock upstream servers and test
// suites, and they go through the actual domain normalizer so their shape
// matches what the collector sees in production.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock/citydata
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/oneseo/congestion-collector/internal/domain"
)

// observationTime is fixed so fixture output is reproducible.
const observationTime = "2026-08-31 14:30"

// levels rotate across areas so every congestion level appears in the set.
var levels = []string{"여유", "보통", "약간 붐빔", "붐빔"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output directory for fixture files")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	catalog := domain.DefaultCatalog()
	counts := make(map[domain.CongestionLevel]int)

	for i, area := range catalog.Areas() {
		envelope := buildEnvelope(area, levels[i%len(levels)])

		data, err := json.MarshalIndent(envelope, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal fixture for %s: %w", area.Name, err)
		}
		path := filepath.Join(*out, fmt.Sprintf("%03d_%s.json", i, area.Name))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write fixture for %s: %w", area.Name, err)
		}

		counts[checkNormalizes(envelope)]++
	}

	log.Printf("wrote %d fixtures to %s", catalog.Len(), *out)
	for level, n := range counts {
		log.Printf("  %s: %d", level, n)
	}
	return nil
}

// buildEnvelope assembles a full citydata response body for one area, with
// values derived from its catalog position so output is deterministic.
func buildEnvelope(area domain.Area, level string) map[string]any {
	popMin := 4000 + int(area.Lat*10)%3000
	popMax := popMin + 2500

	return map[string]any{
		"CITYDATA": map[string]any{
			"AREA_NM": area.Name,
			"LIVE_PPLTN_STTS": []any{
				map[string]any{
					"AREA_CONGEST_LVL":  level,
					"AREA_CONGEST_MSG":  "인구가 몰려있을 수 있어요.",
					"AREA_PPLTN_MIN":    strconv.Itoa(popMin),
					"AREA_PPLTN_MAX":    strconv.Itoa(popMax),
					"MALE_PPLTN_RATE":   "49.2",
					"FEMALE_PPLTN_RATE": "50.8",
					"PPLTN_RATE_20":     "28.1",
					"PPLTN_RATE_30":     "24.6",
					"PPLTN_RATE_40":     "17.3",
					"PPLTN_TIME":        observationTime,
					"FCST_PPLTN": []any{
						map[string]any{
							"FCST_TIME":        "2026-08-31 15:00",
							"FCST_CONGEST_LVL": level,
							"FCST_PPLTN_MIN":   strconv.Itoa(popMin),
							"FCST_PPLTN_MAX":   strconv.Itoa(popMax),
						},
					},
				},
			},
			"ROAD_TRAFFIC_STTS": map[string]any{
				"AVG_ROAD_DATA": map[string]any{
					"ROAD_TRAFFIC_SPD": "21",
					"ROAD_TRAFFIC_IDX": "서행",
					"ROAD_MSG":         "전반적으로 서행하고 있어요.",
				},
			},
			"LIVE_CMRCL_STTS": map[string]any{
				"AREA_CMRCL_LVL": "보통",
				"CMRCL_RSB": []any{
					map[string]any{
						"RSB_MID_CTGR":       "한식",
						"RSB_PAYMENT_LVL":    "바쁨",
						"RSB_SH_PAYMENT_CNT": "142",
						"RSB_MCT_CNT":        "87",
					},
				},
			},
		},
	}
}

// checkNormalizes runs the fixture through the real normalizer and returns
// the congestion level the collector would record.
func checkNormalizes(envelope map[string]any) domain.CongestionLevel {
	raw := domain.RawCityData(envelope["CITYDATA"].(map[string]any))
	pop := domain.NormalizePopulation(raw, discardLogger())
	return pop.CongestionLevel
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

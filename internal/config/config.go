package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	SeoulAPIKey     string
	SeoulAPIBaseURL string

	SQLitePath string

	CollectInterval time.Duration
	CollectCooldown time.Duration

	FetchTimeout      time.Duration
	FetchMaxAttempts  int
	FetchRetryBackoff time.Duration

	// Kakao geocoding configuration. Enabled when a REST key is present.
	KakaoRESTAPIKey string
	KakaoAPIBaseURL string
	KakaoEnabled    bool
	KakaoTimeout    time.Duration
	KakaoCacheSize  int

	// Optional Kafka fan-out. Enabled when brokers are configured.
	KafkaBrokers   []string
	KafkaSinkTopic string
	KafkaEnabled   bool

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is folded in first; a
// missing file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	seoulKey := os.Getenv("SEOUL_API_KEY")
	if seoulKey == "" {
		return nil, errors.New("SEOUL_API_KEY is required")
	}

	collectInterval, err := parseDuration("COLLECT_INTERVAL", "10m")
	if err != nil {
		return nil, err
	}
	collectCooldown, err := parseDuration("COLLECT_COOLDOWN", "100ms")
	if err != nil {
		return nil, err
	}
	fetchTimeout, err := parseDuration("FETCH_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	fetchBackoff, err := parseDuration("FETCH_RETRY_BACKOFF", "1s")
	if err != nil {
		return nil, err
	}
	kakaoTimeout, err := parseDuration("KAKAO_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	fetchAttempts, err := parsePositiveInt("FETCH_MAX_ATTEMPTS", 3)
	if err != nil {
		return nil, err
	}
	kakaoCacheSize, err := parsePositiveInt("KAKAO_CACHE_SIZE", 1000)
	if err != nil {
		return nil, err
	}

	kakaoKey := os.Getenv("KAKAO_REST_API_KEY")
	kakaoEnabled := kakaoKey != ""
	if v := os.Getenv("KAKAO_ENABLED"); v != "" {
		kakaoEnabled = v == "true"
	}

	brokers := splitList(os.Getenv("KAFKA_BROKERS"))

	cfg := &Config{
		SeoulAPIKey:     seoulKey,
		SeoulAPIBaseURL: envOrDefault("SEOUL_API_BASE_URL", "http://openapi.seoul.go.kr:8088"),

		SQLitePath: envOrDefault("SQLITE_PATH", "data/congestion.db"),

		CollectInterval: collectInterval,
		CollectCooldown: collectCooldown,

		FetchTimeout:      fetchTimeout,
		FetchMaxAttempts:  fetchAttempts,
		FetchRetryBackoff: fetchBackoff,

		KakaoRESTAPIKey: kakaoKey,
		KakaoAPIBaseURL: envOrDefault("KAKAO_API_BASE_URL", "https://dapi.kakao.com/v2/local/search"),
		KakaoEnabled:    kakaoEnabled,
		KakaoTimeout:    kakaoTimeout,
		KakaoCacheSize:  kakaoCacheSize,

		KafkaBrokers:   brokers,
		KafkaSinkTopic: envOrDefault("KAFKA_SINK_TOPIC", "congestion-records"),
		KafkaEnabled:   len(brokers) > 0,

		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.KakaoEnabled && cfg.KakaoRESTAPIKey == "" {
		return nil, errors.New("KAKAO_ENABLED is true but KAKAO_REST_API_KEY is not set")
	}
	if cfg.KafkaEnabled && cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_BROKERS is set but KAFKA_SINK_TOPIC is empty")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

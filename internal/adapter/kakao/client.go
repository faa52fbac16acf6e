// Package kakao implements the geocoding collaborator over the Kakao local
// keyword-search API, used only when free text is not already a catalog name.
package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/oneseo/congestion-collector/internal/domain"
	"github.com/oneseo/congestion-collector/internal/observability"
)

// Client implements domain.Geocoder using Kakao keyword search.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a Kakao geocoding client.
func NewClient(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// Geocode returns the first keyword-search match for query. A zero result
// with nil error means Kakao had no match.
func (c *Client) Geocode(ctx context.Context, query string) (domain.GeocodingResult, error) {
	params := url.Values{"query": {query}}
	endpoint := fmt.Sprintf("%s/keyword.json?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.GeocodingResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return domain.GeocodingResult{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return domain.GeocodingResult{}, fmt.Errorf("kakao API error: status %d: %s", resp.StatusCode, body)
	}

	var kakaoResp response
	if err := json.NewDecoder(resp.Body).Decode(&kakaoResp); err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return domain.GeocodingResult{}, fmt.Errorf("decode response: %w", err)
	}

	if len(kakaoResp.Documents) == 0 {
		c.logger.Debug("no geocoding match", "query", query)
		c.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
		return domain.GeocodingResult{}, nil
	}

	doc := kakaoResp.Documents[0]
	lat, err := strconv.ParseFloat(doc.Y, 64)
	if err != nil {
		return domain.GeocodingResult{}, fmt.Errorf("parse latitude %q: %w", doc.Y, err)
	}
	lng, err := strconv.ParseFloat(doc.X, 64)
	if err != nil {
		return domain.GeocodingResult{}, fmt.Errorf("parse longitude %q: %w", doc.X, err)
	}
	c.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	return domain.GeocodingResult{Lat: lat, Lng: lng}, nil
}

// Kakao API response types. Coordinates arrive as strings; x is longitude,
// y is latitude.

type response struct {
	Documents []document `json:"documents"`
}

type document struct {
	PlaceName string `json:"place_name"`
	X         string `json:"x"`
	Y         string `json:"y"`
}

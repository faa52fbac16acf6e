// Package seoul implements the citydata upstream client: endpoint
// templating, bounded retry, and failure classification.
package seoul

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/oneseo/congestion-collector/internal/domain"
	"github.com/oneseo/congestion-collector/internal/observability"
)

// Sentinel errors classifying why a fetch gave up.
var (
	// ErrTransport covers connection and timeout failures talking upstream.
	ErrTransport = errors.New("citydata transport error")
	// ErrDecode covers a non-JSON response body.
	ErrDecode = errors.New("citydata decode error")
	// ErrExhaustedRetries means no attempt produced a usable envelope.
	ErrExhaustedRetries = errors.New("citydata retries exhausted")
)

// envelopeKey is the top-level wrapper every valid response carries.
const envelopeKey = "CITYDATA"

// RetryPolicy bounds the fetch retry loop. Injected so tests can substitute
// a zero-delay policy.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultRetryPolicy is three attempts with a one-second pause between them.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Backoff: time.Second}
}

// Client fetches citydata payloads for catalog areas.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	policy     RetryPolicy
	clock      clockwork.Clock
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a citydata client. The endpoint serves a certificate
// that fails standard verification, so TLS verification is disabled: the
// payload is public data and the risk is accepted.
func NewClient(apiKey, baseURL string, timeout time.Duration, policy RetryPolicy, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // upstream certificate quirk
			},
		},
		policy:  policy,
		clock:   clock,
		logger:  logger,
		metrics: metrics,
	}
}

// Fetch requests the citydata payload for one area and returns the unwrapped
// CITYDATA envelope. Non-200 responses and responses missing the envelope
// are retried per the policy; transport and decode failures give up
// immediately. Every failure comes back as a value wrapping one of the
// sentinel errors.
func (c *Client) Fetch(ctx context.Context, area domain.Area) (domain.RawCityData, error) {
	endpoint := fmt.Sprintf("%s/%s/json/citydata/1/5/%s",
		c.baseURL, c.apiKey, url.PathEscape(area.Name))

	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		payload, retryable, err := c.attempt(ctx, endpoint)
		if err == nil {
			c.metrics.FetchAttempts.WithLabelValues("success").Inc()
			return payload, nil
		}
		c.logger.Warn("citydata fetch attempt failed",
			"area", area.Name, "attempt", attempt, "error", err)
		if !retryable {
			c.metrics.FetchAttempts.WithLabelValues("error").Inc()
			return nil, err
		}
		c.metrics.FetchAttempts.WithLabelValues("retry").Inc()
		if attempt < c.policy.MaxAttempts {
			if !c.sleep(ctx, c.policy.Backoff) {
				return nil, fmt.Errorf("%w: %v", ErrTransport, ctx.Err())
			}
		}
	}

	c.logger.Error("citydata fetch gave up",
		"area", area.Name, "attempts", c.policy.MaxAttempts)
	return nil, fmt.Errorf("%w: %q after %d attempts",
		ErrExhaustedRetries, area.Name, c.policy.MaxAttempts)
}

// attempt performs one request. The second return reports whether the
// failure is worth another attempt.
func (c *Client) attempt(ctx context.Context, endpoint string) (domain.RawCityData, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, true, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	payload, ok := body[envelopeKey].(map[string]any)
	if !ok {
		return nil, true, fmt.Errorf("response missing %s envelope", envelopeKey)
	}
	return domain.RawCityData(payload), false, nil
}

// sleep waits for the backoff on the injected clock, returning false if the
// context finished first.
func (c *Client) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-c.clock.After(d):
		return true
	}
}

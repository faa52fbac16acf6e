// Package collector drives the periodic catalog sweep: fetch each area's
// citydata, normalize it, and persist the accepted observations as one batch.
package collector

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/oneseo/congestion-collector/internal/domain"
	"github.com/oneseo/congestion-collector/internal/observability"
)

// Fetcher retrieves the raw citydata payload for one area.
type Fetcher interface {
	Fetch(ctx context.Context, area domain.Area) (domain.RawCityData, error)
}

// Store persists accepted observations.
type Store interface {
	InsertBatch(ctx context.Context, records []domain.CongestionRecord) error
}

// Publisher fans accepted observations out to downstream consumers.
type Publisher interface {
	PublishBatch(ctx context.Context, records []domain.CongestionRecord) error
}

// upstreamTimeLayout is how the citydata feed formats observation times,
// in Seoul local time.
const upstreamTimeLayout = "2006-01-02 15:04"

// Collector sweeps the area catalog sequentially. One area's failure never
// aborts the sweep; only the final batch write can fail a run.
type Collector struct {
	catalog   *domain.Catalog
	fetcher   Fetcher
	store     Store
	publisher Publisher
	clock     clockwork.Clock
	cooldown  time.Duration
	seoulTZ   *time.Location
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Collector. publisher may be nil to disable fan-out.
func New(catalog *domain.Catalog, fetcher Fetcher, store Store, publisher Publisher,
	clock clockwork.Clock, cooldown time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Collector {
	tz, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		tz = time.FixedZone("KST", 9*60*60)
	}
	return &Collector{
		catalog:   catalog,
		fetcher:   fetcher,
		store:     store,
		publisher: publisher,
		clock:     clock,
		cooldown:  cooldown,
		seoulTZ:   tz,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run sweeps the catalog once immediately, then every interval until the
// context is canceled.
func (c *Collector) Run(ctx context.Context, interval time.Duration) error {
	for {
		if _, err := c.RunOnce(ctx); err != nil {
			c.logger.Error("collection run failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.clock.After(interval):
		}
	}
}

// RunOnce performs a full catalog sweep and returns the accepted batch.
// Areas whose fetch fails are logged and skipped; areas whose congestion
// level is unknown are skipped without being treated as failures. Accepted
// observations are written in a single batch at the end, and only that
// write's failure propagates.
func (c *Collector) RunOnce(ctx context.Context) ([]domain.CongestionRecord, error) {
	c.metrics.CollectorRunning.Set(1)
	defer c.metrics.CollectorRunning.Set(0)
	start := c.clock.Now()

	areas := c.catalog.Areas()
	records := make([]domain.CongestionRecord, 0, len(areas))
	var failed, skipped int

	for i, area := range areas {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		rec, ok := c.collectArea(ctx, area)
		switch {
		case !ok:
			failed++
		case rec.CongestionLevel == domain.LevelUnknown:
			skipped++
		default:
			records = append(records, rec)
		}

		if i < len(areas)-1 {
			if !c.pause(ctx) {
				return nil, ctx.Err()
			}
		}
	}

	if len(records) > 0 {
		if err := c.store.InsertBatch(ctx, records); err != nil {
			return nil, err
		}
		c.metrics.RecordsStored.Add(float64(len(records)))

		if c.publisher != nil {
			if err := c.publisher.PublishBatch(ctx, records); err != nil {
				c.logger.Error("publish failed, records are persisted", "error", err)
			}
		}
	}
	c.metrics.BatchSize.Observe(float64(len(records)))

	elapsed := c.clock.Now().Sub(start)
	c.metrics.RunDuration.Observe(elapsed.Seconds())
	c.logger.Info("collection run complete",
		"accepted", len(records), "skipped", skipped, "failed", failed,
		"duration", elapsed)
	return records, nil
}

// collectArea fetches and normalizes one area. The second return is false
// when the fetch failed outright; an unusable congestion level still counts
// as a successful fetch and is reported through the record's level.
func (c *Collector) collectArea(ctx context.Context, area domain.Area) (domain.CongestionRecord, bool) {
	raw, err := c.fetcher.Fetch(ctx, area)
	if err != nil {
		c.logger.Warn("area fetch failed", "area", area.Name, "error", err)
		c.metrics.AreasFailed.Inc()
		return domain.CongestionRecord{}, false
	}

	pop := domain.NormalizePopulation(raw, c.logger)
	if pop.CongestionLevel == domain.LevelUnknown {
		c.logger.Warn("congestion level unavailable, skipping", "area", area.Name)
		c.metrics.AreasSkipped.Inc()
		return domain.CongestionRecord{CongestionLevel: domain.LevelUnknown}, true
	}

	c.metrics.AreasAccepted.Inc()
	return domain.CongestionRecord{
		Area:            area.Name,
		CongestionLevel: pop.CongestionLevel,
		Timestamp:       c.normalizeTimestamp(pop.CurrentTime),
		PopulationMin:   pop.PopulationMin,
		PopulationMax:   pop.PopulationMax,
	}, true
}

// normalizeTimestamp converts the upstream Seoul-local observation time to
// RFC 3339 UTC so stored timestamps sort lexicographically. A missing or
// malformed upstream time falls back to the collection time.
func (c *Collector) normalizeTimestamp(upstream string) string {
	if upstream != domain.ValueUnknown {
		if t, err := time.ParseInLocation(upstreamTimeLayout, upstream, c.seoulTZ); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
		c.logger.Warn("unparseable observation time", "value", upstream)
	}
	return c.clock.Now().UTC().Format(time.RFC3339)
}

// pause waits out the per-area cooldown, returning false if the context
// finished first.
func (c *Collector) pause(ctx context.Context) bool {
	if c.cooldown <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-c.clock.After(c.cooldown):
		return true
	}
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pkordes/trip-booking/backend/internal/domain"
	"github.com/pkordes/trip-booking/backend/internal/metrics"
)

// versionKey holds a counter bumped on every invalidation. Page keys embed
// the version they were computed under, so a bump orphans every older page
// and they expire through their TTL.
const versionKey = "trips:pages:version"

// TripPages caches trip listing pages in Redis.
// Key format: trips:pages:v<version>:<page>:<pageSize>
type TripPages struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// NewTripPages creates a TripPages cache wrapping the given Redis client.
func NewTripPages(client *redis.Client, ttl time.Duration, log *slog.Logger) *TripPages {
	return &TripPages{client: client, ttl: ttl, log: log}
}

// Fetch returns the cached page for p, or calls load and caches its result.
// Redis failures are logged and never fail the request: the page is then
// served straight from load.
//
// The version is read once, before load runs. A page loaded from data that
// predates a concurrent invalidation is stored under the old version and is
// never read again.
func (c *TripPages) Fetch(ctx context.Context, p domain.PaginationParams, load func(context.Context) (domain.TripPage, error)) (domain.TripPage, error) {
	version, err := c.version(ctx)
	if err != nil {
		metrics.TripPageCacheTotal.WithLabelValues("error").Inc()
		c.log.WarnContext(ctx, "trip page cache unavailable", "error", err)
		return load(ctx)
	}
	key := PageKey(version, p)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var page domain.TripPage
		if err := json.Unmarshal(raw, &page); err == nil {
			metrics.TripPageCacheTotal.WithLabelValues("hit").Inc()
			return page, nil
		}
		c.log.WarnContext(ctx, "discarding undecodable trip page", "key", key)
	case errors.Is(err, redis.Nil):
	default:
		metrics.TripPageCacheTotal.WithLabelValues("error").Inc()
		c.log.WarnContext(ctx, "trip page cache read failed", "key", key, "error", err)
		return load(ctx)
	}

	metrics.TripPageCacheTotal.WithLabelValues("miss").Inc()
	page, err := load(ctx)
	if err != nil {
		return domain.TripPage{}, err
	}

	encoded, err := json.Marshal(page)
	if err == nil {
		err = c.client.Set(ctx, key, encoded, c.ttl).Err()
	}
	if err != nil {
		c.log.WarnContext(ctx, "trip page cache write failed", "key", key, "error", err)
	}
	return page, nil
}

// Invalidate bumps the version counter, orphaning every cached page.
func (c *TripPages) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("cache.TripPages.Invalidate: %w", err)
	}
	return nil
}

// version reads the current version; an absent counter is version 0.
func (c *TripPages) version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache.TripPages.version: %w", err)
	}
	return v, nil
}

// PageKey builds the Redis key for a page computed under version.
func PageKey(version int64, p domain.PaginationParams) string {
	return fmt.Sprintf("trips:pages:v%d:%d:%d", version, p.Page, p.Limit)
}

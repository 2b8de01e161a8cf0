// Package cache keeps validated daily timings in Redis so repeated lookups
// for the same city and date skip the upstream API.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/kandil-labs/vakit/internal/aladhan"
)

// Cache wraps an injected Redis client. A nil *Cache is a valid no-op cache.
type Cache struct {
	rdb *redis.Client
}

// NewClient builds the underlying Redis client.
func NewClient(addr, username, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       0,
	})
}

// New wraps an existing Redis client.
func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Key builds the cache key for a coordinate pair and YYYY-MM-DD date.
// Coordinates are rounded to four decimals so nearby float noise from
// clients maps to one entry.
func Key(lat, lon float64, date string) string {
	return fmt.Sprintf("timings:%.4f:%.4f:%s", lat, lon, date)
}

// GetDay returns the cached day for the key, or false on miss. Any Redis or
// decode error is logged and treated as a miss.
func (c *Cache) GetDay(ctx context.Context, lat, lon float64, date string) (*aladhan.Day, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, Key(lat, lon, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("date", date).Msg("timings cache read failed")
		}
		return nil, false
	}
	var day aladhan.Day
	if err := json.Unmarshal(raw, &day); err != nil {
		log.Warn().Err(err).Str("date", date).Msg("timings cache entry corrupt")
		return nil, false
	}
	return &day, true
}

// SetDay stores a day until the next local midnight. Failures are logged
// and otherwise ignored; the cache is advisory.
func (c *Cache) SetDay(ctx context.Context, lat, lon float64, day *aladhan.Day, now time.Time) {
	if c == nil || c.rdb == nil || day == nil {
		return
	}
	raw, err := json.Marshal(day)
	if err != nil {
		log.Warn().Err(err).Msg("timings cache encode failed")
		return
	}
	key := Key(lat, lon, day.Date)
	if err := c.rdb.Set(ctx, key, raw, TTLUntilMidnight(now)).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("timings cache write failed")
	}
}

// TTLUntilMidnight is the time left until the next local midnight, with a
// one-minute floor so entries written just before midnight still expire.
func TTLUntilMidnight(now time.Time) time.Duration {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	ttl := midnight.Sub(now)
	if ttl < time.Minute {
		ttl = time.Minute
	}
	return ttl
}

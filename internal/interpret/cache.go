package interpret

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/spherical/saleseer/internal/cache"
	"github.com/spherical/saleseer/internal/domain"
	"github.com/spherical/saleseer/internal/observability"
)

const cacheKeyPrefix = "criteria:"

// CachingInterpreter remembers model-produced Criteria per normalized query.
// Fallback results are never stored, so a transient outage does not pin a
// degraded answer.
type CachingInterpreter struct {
	next   domain.Interpreter
	store  cache.Client
	ttl    time.Duration
	logger *observability.Logger
}

// NewCaching wraps next with a criteria cache.
func NewCaching(next domain.Interpreter, store cache.Client, ttl time.Duration, logger *observability.Logger) *CachingInterpreter {
	if logger == nil {
		logger = observability.Nop()
	}
	return &CachingInterpreter{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger.WithComponent("criteria_cache"),
	}
}

// Interpret serves from cache when possible and delegates otherwise.
func (c *CachingInterpreter) Interpret(ctx context.Context, query string) domain.Interpretation {
	key := CacheKey(query)
	log := c.logger.WithContext(ctx)

	if data, err := c.store.Get(ctx, key); err == nil {
		var criteria domain.Criteria
		if err := json.Unmarshal(data, &criteria); err == nil {
			return domain.Interpretation{Criteria: criteria, Source: domain.SourceCache}
		}
		log.Warn().Str("key", key).Msg("Discarding undecodable cache entry")
		_ = c.store.Delete(ctx, key)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn().Err(err).Msg("Cache read failed")
	}

	result := c.next.Interpret(ctx, query)
	if result.Source != domain.SourceModel {
		return result
	}

	data, err := json.Marshal(result.Criteria)
	if err != nil {
		return result
	}
	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		log.Warn().Err(err).Msg("Cache write failed")
	}
	return result
}

// CacheKey derives the cache key for a query. Case and surrounding
// whitespace do not change the key.
func CacheKey(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(query))))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

var _ domain.Interpreter = (*CachingInterpreter)(nil)

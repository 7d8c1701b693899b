// Package cache is a cache-aside wrapper around external recipe lookups.
// The cache is a performance path only: any backend failure degrades to
// a direct gateway call and is never surfaced to the caller.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/recipedex/backend/internal/types"
)

// Gateway fetches a single recipe from the external provider.
type Gateway interface {
	FetchByID(ctx context.Context, id int64) (types.Recipe, error)
}

// Backend is the key-value store behind the cache. Expiry is the
// backend's job; this layer does no lazy-expiry bookkeeping.
type Backend interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores the value under key with the given TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// RecipeCache wraps a Gateway with cache-aside reads keyed by
// (source, external id). Concurrent misses on the same key may each hit
// the upstream and write the key; last write wins, which is fine because
// external data is immutable in practice within the TTL window.
type RecipeCache struct {
	backend Backend
	gateway Gateway
	ttl     time.Duration
	logger  *zap.Logger
}

// NewRecipeCache creates a new RecipeCache instance
func NewRecipeCache(backend Backend, gateway Gateway, ttl time.Duration, logger *zap.Logger) *RecipeCache {
	return &RecipeCache{
		backend: backend,
		gateway: gateway,
		ttl:     ttl,
		logger:  logger,
	}
}

// Key returns the cache key for an external recipe. The key encodes both
// source and id so two providers can never collide in the namespace.
func Key(source types.Source, id int64) string {
	return fmt.Sprintf("recipe:%s:%d", source.Provider(), id)
}

// GetOrFetch returns the recipe for (source, id) from cache when present
// and unexpired, otherwise fetches it from the gateway and stores it for
// the configured TTL. The returned CacheInfo tells the caller which path
// answered and how long it took. Gateway failures propagate unchanged
// and are never cached.
func (c *RecipeCache) GetOrFetch(ctx context.Context, source types.Source, id int64) (types.Recipe, types.CacheInfo, error) {
	key := Key(source, id)
	start := time.Now()

	if recipe, ok := c.lookup(ctx, key); ok {
		return recipe, types.CacheInfo{
			Hit:            true,
			ResponseTimeMs: elapsedMs(start),
			Source:         types.CacheSourceCache,
		}, nil
	}

	recipe, err := c.gateway.FetchByID(ctx, id)
	if err != nil {
		return types.Recipe{}, types.CacheInfo{}, err
	}

	c.store(ctx, key, recipe)

	return recipe, types.CacheInfo{
		Hit:            false,
		ResponseTimeMs: elapsedMs(start),
		Source:         types.CacheSourceAPI,
	}, nil
}

// lookup reads the key and reports whether a usable entry was found. A
// backend error or a corrupted entry counts as a miss.
func (c *RecipeCache) lookup(ctx context.Context, key string) (types.Recipe, bool) {
	val, found, err := c.backend.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed, falling through to gateway",
			zap.String("key", key), zap.Error(err))
		return types.Recipe{}, false
	}
	if !found {
		return types.Recipe{}, false
	}

	var recipe types.Recipe
	if err := json.Unmarshal([]byte(val), &recipe); err != nil {
		c.logger.Warn("discarding corrupted cache entry",
			zap.String("key", key), zap.Error(err))
		return types.Recipe{}, false
	}
	return recipe, true
}

// store writes the recipe under key, best-effort. Cache writes are not
// transactional with the gateway call.
func (c *RecipeCache) store(ctx context.Context, key string, recipe types.Recipe) {
	data, err := json.Marshal(recipe)
	if err != nil {
		c.logger.Warn("failed to serialize recipe for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.backend.Set(ctx, key, string(data), c.ttl); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

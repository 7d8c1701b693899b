// Package service orchestrates recipe lookups across the internal store
// and the cache-wrapped external gateway.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/recipedex/backend/internal/types"
)

// Store is the internal-recipe authority the aggregator dispatches to.
type Store interface {
	Create(ctx context.Context, req types.RecipeRequest) (types.Recipe, error)
	Get(ctx context.Context, id int64) (types.Recipe, error)
	Update(ctx context.Context, id int64, req types.RecipeRequest) (types.Recipe, error)
	List(ctx context.Context) ([]types.Recipe, error)
	Search(ctx context.Context, query string) ([]types.Recipe, error)
}

// ExternalFetcher is the cache-wrapped single-recipe lookup path.
type ExternalFetcher interface {
	GetOrFetch(ctx context.Context, source types.Source, id int64) (types.Recipe, types.CacheInfo, error)
}

// ExternalSearcher is the uncached external search path.
type ExternalSearcher interface {
	Search(ctx context.Context, query string) ([]types.Recipe, error)
}

// Aggregator routes single-recipe lookups by source and merges internal
// and external results for combined search. All collaborators are
// injected; the aggregator holds no state of its own.
type Aggregator struct {
	store    Store
	fetcher  ExternalFetcher
	searcher ExternalSearcher
	logger   *zap.Logger
}

// NewAggregator creates a new Aggregator instance
func NewAggregator(store Store, fetcher ExternalFetcher, searcher ExternalSearcher, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		store:    store,
		fetcher:  fetcher,
		searcher: searcher,
		logger:   logger,
	}
}

// GetRecipe resolves a single recipe. Internal ids go to the store;
// anything else goes through the cache layer, which attaches provenance.
// Store and gateway errors propagate unchanged.
func (a *Aggregator) GetRecipe(ctx context.Context, source types.Source, id int64) (types.Recipe, error) {
	if source.Internal() {
		return a.store.Get(ctx, id)
	}

	recipe, info, err := a.fetcher.GetOrFetch(ctx, source, id)
	if err != nil {
		return types.Recipe{}, err
	}
	recipe.CacheInfo = &info
	return recipe, nil
}

// SearchRecipes queries the store and the external provider
// concurrently and merges the results, internal matches first. A failing
// external leg degrades the search to internal-only results instead of
// failing it; the returned mealdb_cache_info reflects the failure. A
// store failure fails the whole search.
func (a *Aggregator) SearchRecipes(ctx context.Context, query string) (types.SearchResponse, error) {
	if query == "" {
		return types.SearchResponse{Recipes: []types.Recipe{}}, nil
	}

	var (
		internal    []types.Recipe
		external    []types.Recipe
		externalErr error
		externalMs  float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		internal, err = a.store.Search(gctx, query)
		return err
	})
	g.Go(func() error {
		start := time.Now()
		external, externalErr = a.searcher.Search(gctx, query)
		externalMs = float64(time.Since(start)) / float64(time.Millisecond)
		// Degrade, don't fail: a partial result beats none.
		return nil
	})
	if err := g.Wait(); err != nil {
		return types.SearchResponse{}, err
	}

	info := &types.CacheInfo{
		Hit:            false,
		ResponseTimeMs: externalMs,
		Source:         types.CacheSourceAPI,
	}
	if externalErr != nil {
		a.logger.Warn("external search failed, returning internal results only",
			zap.String("query", query), zap.Error(externalErr))
		info.Source = types.CacheSourceError
		external = nil
	}

	merged := make([]types.Recipe, 0, len(internal)+len(external))
	merged = append(merged, internal...)
	merged = append(merged, external...)

	return types.SearchResponse{Recipes: merged, MealDBCacheInfo: info}, nil
}

// CreateRecipe stores a new internal recipe. Created recipes are always
// internal, so no guard applies.
func (a *Aggregator) CreateRecipe(ctx context.Context, req types.RecipeRequest) (types.Recipe, error) {
	return a.store.Create(ctx, req)
}

// UpdateRecipe replaces an internal recipe's mutable fields. The edit
// policy is checked before any store access; external sources are
// rejected outright.
func (a *Aggregator) UpdateRecipe(ctx context.Context, source types.Source, id int64, req types.RecipeRequest) (types.Recipe, error) {
	if !CanEditSource(source.Provider()) {
		return types.Recipe{}, fmt.Errorf("%w: source %q", types.ErrReadOnlySource, source.Provider())
	}
	return a.store.Update(ctx, id, req)
}

// ListRecipes returns all internal recipes.
func (a *Aggregator) ListRecipes(ctx context.Context) ([]types.Recipe, error) {
	return a.store.List(ctx)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recipedex/backend/internal/types"
)

// fakeStore records which operations were invoked.
type fakeStore struct {
	recipes    map[int64]types.Recipe
	searchHits []types.Recipe
	searchErr  error
	updated    bool
	created    bool
}

func (s *fakeStore) Create(ctx context.Context, req types.RecipeRequest) (types.Recipe, error) {
	s.created = true
	return types.Recipe{ID: 1, Title: req.Title, Source: types.SourceInternal}, nil
}

func (s *fakeStore) Get(ctx context.Context, id int64) (types.Recipe, error) {
	r, ok := s.recipes[id]
	if !ok {
		return types.Recipe{}, types.ErrNotFound
	}
	return r, nil
}

func (s *fakeStore) Update(ctx context.Context, id int64, req types.RecipeRequest) (types.Recipe, error) {
	s.updated = true
	if _, ok := s.recipes[id]; !ok {
		return types.Recipe{}, types.ErrNotFound
	}
	return types.Recipe{ID: id, Title: req.Title, Source: types.SourceInternal}, nil
}

func (s *fakeStore) List(ctx context.Context) ([]types.Recipe, error) {
	var out []types.Recipe
	for _, r := range s.recipes {
		out = append(out, r)
	}
	return out, nil
}

func (s *fakeStore) Search(ctx context.Context, query string) ([]types.Recipe, error) {
	return s.searchHits, s.searchErr
}

type fakeFetcher struct {
	recipe types.Recipe
	info   types.CacheInfo
	err    error
}

func (f *fakeFetcher) GetOrFetch(ctx context.Context, source types.Source, id int64) (types.Recipe, types.CacheInfo, error) {
	if f.err != nil {
		return types.Recipe{}, types.CacheInfo{}, f.err
	}
	return f.recipe, f.info, nil
}

type fakeSearcher struct {
	hits   []types.Recipe
	err    error
	called bool
}

func (f *fakeSearcher) Search(ctx context.Context, query string) ([]types.Recipe, error) {
	f.called = true
	return f.hits, f.err
}

func source(t *testing.T, tag string) types.Source {
	t.Helper()
	s, err := types.ParseSource(tag)
	require.NoError(t, err)
	return s
}

func TestGetRecipeRoutesBySource(t *testing.T) {
	internal := types.Recipe{ID: 2, Title: "Spaghetti Carbonara", Source: types.SourceInternal}
	external := types.Recipe{ID: 52961, Title: "Mediterranean Pasta Salad", Source: types.SourceMealDB}

	store := &fakeStore{recipes: map[int64]types.Recipe{2: internal}}
	fetcher := &fakeFetcher{
		recipe: external,
		info:   types.CacheInfo{Hit: true, Source: types.CacheSourceCache},
	}
	agg := NewAggregator(store, fetcher, &fakeSearcher{}, zap.NewNop())
	ctx := context.Background()

	got, err := agg.GetRecipe(ctx, source(t, types.SourceInternal), 2)
	require.NoError(t, err)
	assert.Equal(t, "Spaghetti Carbonara", got.Title)
	// Internal lookups carry no cache provenance.
	assert.Nil(t, got.CacheInfo)

	got, err = agg.GetRecipe(ctx, source(t, types.SourceMealDB), 52961)
	require.NoError(t, err)
	assert.Equal(t, "Mediterranean Pasta Salad", got.Title)
	require.NotNil(t, got.CacheInfo)
	assert.True(t, got.CacheInfo.Hit)
	assert.Equal(t, types.CacheSourceCache, got.CacheInfo.Source)
}

func TestGetRecipeErrorsPropagate(t *testing.T) {
	store := &fakeStore{recipes: map[int64]types.Recipe{}}
	fetcher := &fakeFetcher{err: types.ErrUpstreamError}
	agg := NewAggregator(store, fetcher, &fakeSearcher{}, zap.NewNop())
	ctx := context.Background()

	_, err := agg.GetRecipe(ctx, source(t, types.SourceInternal), 7)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = agg.GetRecipe(ctx, source(t, types.SourceMealDB), 7)
	assert.ErrorIs(t, err, types.ErrUpstreamError)
}

func TestSearchRecipesMergesInternalFirst(t *testing.T) {
	store := &fakeStore{searchHits: []types.Recipe{
		{ID: 2, Title: "Spaghetti Carbonara", Source: types.SourceInternal},
	}}
	searcher := &fakeSearcher{hits: []types.Recipe{
		{ID: 52961, Title: "Mediterranean Pasta Salad", Source: types.SourceMealDB},
	}}
	agg := NewAggregator(store, &fakeFetcher{}, searcher, zap.NewNop())

	result, err := agg.SearchRecipes(context.Background(), "pasta")
	require.NoError(t, err)

	require.Len(t, result.Recipes, 2)
	assert.Equal(t, "Spaghetti Carbonara", result.Recipes[0].Title)
	assert.Equal(t, types.SourceInternal, result.Recipes[0].Source)
	assert.Equal(t, "Mediterranean Pasta Salad", result.Recipes[1].Title)
	assert.Equal(t, types.SourceMealDB, result.Recipes[1].Source)

	require.NotNil(t, result.MealDBCacheInfo)
	assert.False(t, result.MealDBCacheInfo.Hit)
	assert.Equal(t, types.CacheSourceAPI, result.MealDBCacheInfo.Source)
}

func TestSearchRecipesDegradesOnExternalFailure(t *testing.T) {
	store := &fakeStore{searchHits: []types.Recipe{
		{ID: 2, Title: "Spaghetti Carbonara", Source: types.SourceInternal},
	}}
	searcher := &fakeSearcher{err: types.ErrUpstreamError}
	agg := NewAggregator(store, &fakeFetcher{}, searcher, zap.NewNop())

	// A failing external leg yields internal-only results, not an error.
	result, err := agg.SearchRecipes(context.Background(), "pasta")
	require.NoError(t, err)

	require.Len(t, result.Recipes, 1)
	assert.Equal(t, "Spaghetti Carbonara", result.Recipes[0].Title)
	require.NotNil(t, result.MealDBCacheInfo)
	assert.Equal(t, types.CacheSourceError, result.MealDBCacheInfo.Source)
}

func TestSearchRecipesStoreFailureFails(t *testing.T) {
	store := &fakeStore{searchErr: types.ErrValidation}
	agg := NewAggregator(store, &fakeFetcher{}, &fakeSearcher{}, zap.NewNop())

	_, err := agg.SearchRecipes(context.Background(), "pasta")
	assert.Error(t, err)
}

func TestSearchRecipesEmptyQuery(t *testing.T) {
	searcher := &fakeSearcher{}
	agg := NewAggregator(&fakeStore{}, &fakeFetcher{}, searcher, zap.NewNop())

	result, err := agg.SearchRecipes(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, result.Recipes)
	assert.Nil(t, result.MealDBCacheInfo)
	assert.False(t, searcher.called)
}

func TestUpdateRecipeGuardsExternalSources(t *testing.T) {
	store := &fakeStore{recipes: map[int64]types.Recipe{}}
	agg := NewAggregator(store, &fakeFetcher{}, &fakeSearcher{}, zap.NewNop())

	_, err := agg.UpdateRecipe(context.Background(), source(t, types.SourceMealDB), 52961, types.RecipeRequest{})
	assert.ErrorIs(t, err, types.ErrReadOnlySource)
	// Rejected before any store access.
	assert.False(t, store.updated)
}

func TestUpdateRecipeInternal(t *testing.T) {
	store := &fakeStore{recipes: map[int64]types.Recipe{
		5: {ID: 5, Title: "Tea", Source: types.SourceInternal},
	}}
	agg := NewAggregator(store, &fakeFetcher{}, &fakeSearcher{}, zap.NewNop())

	updated, err := agg.UpdateRecipe(context.Background(), source(t, types.SourceInternal), 5,
		types.RecipeRequest{Title: "Green Tea"})
	require.NoError(t, err)
	assert.Equal(t, "Green Tea", updated.Title)
	assert.True(t, store.updated)
}

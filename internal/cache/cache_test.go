package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recipedex/backend/internal/types"
)

// fakeBackend is an in-memory Backend with a manual clock so TTL expiry
// can be tested without sleeping.
type fakeBackend struct {
	mu      sync.Mutex
	entries map[string]fakeEntry
	now     time.Time
	getErr  error
	setErr  error
}

type fakeEntry struct {
	value     string
	expiresAt time.Time
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{entries: map[string]fakeEntry{}, now: time.Unix(0, 0)}
}

func (b *fakeBackend) Get(ctx context.Context, key string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.getErr != nil {
		return "", false, b.getErr
	}
	entry, ok := b.entries[key]
	if !ok || !b.now.Before(entry.expiresAt) {
		return "", false, nil
	}
	return entry.value, true, nil
}

func (b *fakeBackend) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.setErr != nil {
		return b.setErr
	}
	b.entries[key] = fakeEntry{value: value, expiresAt: b.now.Add(ttl)}
	return nil
}

func (b *fakeBackend) advance(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.now = b.now.Add(d)
}

// fakeGateway counts upstream calls.
type fakeGateway struct {
	recipe types.Recipe
	err    error
	calls  int
}

func (g *fakeGateway) FetchByID(ctx context.Context, id int64) (types.Recipe, error) {
	g.calls++
	if g.err != nil {
		return types.Recipe{}, g.err
	}
	return g.recipe, nil
}

func externalRecipe() types.Recipe {
	return types.Recipe{
		ID:          52961,
		Title:       "Mediterranean Pasta Salad",
		Ingredients: []string{"200g Mozzarella"},
		Steps:       []string{"Toss everything together."},
		Cuisine:     "Italian",
		Source:      types.SourceMealDB,
	}
}

func mealdbSource(t *testing.T) types.Source {
	t.Helper()
	source, err := types.ParseSource(types.SourceMealDB)
	require.NoError(t, err)
	return source
}

func TestGetOrFetchColdThenWarm(t *testing.T) {
	backend := newFakeBackend()
	gateway := &fakeGateway{recipe: externalRecipe()}
	c := NewRecipeCache(backend, gateway, 24*time.Hour, zap.NewNop())
	ctx := context.Background()
	source := mealdbSource(t)

	// Cold cache: the gateway answers.
	recipe, info, err := c.GetOrFetch(ctx, source, 52961)
	require.NoError(t, err)
	assert.Equal(t, "Mediterranean Pasta Salad", recipe.Title)
	assert.False(t, info.Hit)
	assert.Equal(t, types.CacheSourceAPI, info.Source)
	assert.Equal(t, 1, gateway.calls)

	// Within the TTL: the cache answers, the gateway is not called again.
	recipe, info, err = c.GetOrFetch(ctx, source, 52961)
	require.NoError(t, err)
	assert.Equal(t, "Mediterranean Pasta Salad", recipe.Title)
	assert.True(t, info.Hit)
	assert.Equal(t, types.CacheSourceCache, info.Source)
	assert.Equal(t, 1, gateway.calls)
	assert.GreaterOrEqual(t, info.ResponseTimeMs, 0.0)
}

func TestGetOrFetchAfterTTLExpiry(t *testing.T) {
	backend := newFakeBackend()
	gateway := &fakeGateway{recipe: externalRecipe()}
	c := NewRecipeCache(backend, gateway, time.Hour, zap.NewNop())
	ctx := context.Background()
	source := mealdbSource(t)

	_, _, err := c.GetOrFetch(ctx, source, 52961)
	require.NoError(t, err)

	backend.advance(2 * time.Hour)

	_, info, err := c.GetOrFetch(ctx, source, 52961)
	require.NoError(t, err)
	assert.False(t, info.Hit)
	assert.Equal(t, types.CacheSourceAPI, info.Source)
	assert.Equal(t, 2, gateway.calls)
}

func TestGetOrFetchBackendFailureDegradesToGateway(t *testing.T) {
	backend := newFakeBackend()
	backend.getErr = errors.New("connection refused")
	backend.setErr = errors.New("connection refused")
	gateway := &fakeGateway{recipe: externalRecipe()}
	c := NewRecipeCache(backend, gateway, time.Hour, zap.NewNop())

	// A dead cache backend is a miss, not a request failure.
	recipe, info, err := c.GetOrFetch(context.Background(), mealdbSource(t), 52961)
	require.NoError(t, err)
	assert.Equal(t, "Mediterranean Pasta Salad", recipe.Title)
	assert.False(t, info.Hit)
	assert.Equal(t, types.CacheSourceAPI, info.Source)
}

func TestGetOrFetchGatewayErrorsPropagate(t *testing.T) {
	backend := newFakeBackend()
	gateway := &fakeGateway{err: types.ErrUpstreamNotFound}
	c := NewRecipeCache(backend, gateway, time.Hour, zap.NewNop())
	ctx := context.Background()
	source := mealdbSource(t)

	_, _, err := c.GetOrFetch(ctx, source, 404404)
	assert.ErrorIs(t, err, types.ErrUpstreamNotFound)

	// Failures are never cached.
	assert.Empty(t, backend.entries)

	gateway.err = types.ErrUpstreamError
	_, _, err = c.GetOrFetch(ctx, source, 404404)
	assert.ErrorIs(t, err, types.ErrUpstreamError)
	assert.Equal(t, 2, gateway.calls)
}

func TestGetOrFetchCorruptedEntryTreatedAsMiss(t *testing.T) {
	backend := newFakeBackend()
	gateway := &fakeGateway{recipe: externalRecipe()}
	c := NewRecipeCache(backend, gateway, time.Hour, zap.NewNop())
	source := mealdbSource(t)

	require.NoError(t, backend.Set(context.Background(), Key(source, 52961), "{not json", time.Hour))

	recipe, info, err := c.GetOrFetch(context.Background(), source, 52961)
	require.NoError(t, err)
	assert.Equal(t, "Mediterranean Pasta Salad", recipe.Title)
	assert.False(t, info.Hit)
	assert.Equal(t, 1, gateway.calls)
}

func TestKeyEncodesSourceAndID(t *testing.T) {
	source := mealdbSource(t)
	assert.Equal(t, "recipe:mealdb:52961", Key(source, 52961))
	assert.NotEqual(t, Key(source, 1), Key(source, 2))
}

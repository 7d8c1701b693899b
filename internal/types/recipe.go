package types

// ExternalIDFloor is the first identifier in the external id space.
// Internal recipes count up from 1; externally sourced recipes always
// carry ids at or above this floor, so the two spaces never collide.
const ExternalIDFloor = 50000

// Recipe is the unified recipe representation returned to callers,
// regardless of whether it came from the internal store or an external
// provider.
type Recipe struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Ingredients []string   `json:"ingredients"`
	Steps       []string   `json:"steps"`
	PrepTime    string     `json:"prepTime"`
	CookTime    string     `json:"cookTime"`
	Difficulty  string     `json:"difficulty"`
	Cuisine     string     `json:"cuisine"`
	Source      string     `json:"source"`
	CacheInfo   *CacheInfo `json:"cache_info,omitempty"`
}

// RecipeRequest is the create/update payload: a recipe without id or
// source. Source is assigned by the server, never by the client.
type RecipeRequest struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	PrepTime    string   `json:"prepTime"`
	CookTime    string   `json:"cookTime"`
	Difficulty  string   `json:"difficulty"`
	Cuisine     string   `json:"cuisine"`
}

// CacheInfo records the provenance of an external lookup: whether it was
// served from cache, how long it took, and which path answered.
type CacheInfo struct {
	Hit            bool    `json:"hit"`
	ResponseTimeMs float64 `json:"response_time_ms"`
	Source         string  `json:"source"`
}

// CacheInfo.Source values.
const (
	CacheSourceCache = "cache"
	CacheSourceAPI   = "api"
	// CacheSourceError marks a combined search whose external leg failed
	// and was degraded to internal-only results.
	CacheSourceError = "error"
)

// SearchResponse is the combined search result: internal matches first,
// then external matches, plus the provenance of the external search call
// as a whole.
type SearchResponse struct {
	Recipes         []Recipe   `json:"recipes"`
	MealDBCacheInfo *CacheInfo `json:"mealdb_cache_info,omitempty"`
}

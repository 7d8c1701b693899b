// Package mealdb is a thin client for TheMealDB API. It normalizes the
// upstream meal schema into the unified recipe model and does nothing
// else: no caching, no retries.
package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/recipedex/backend/internal/types"
)

// DefaultBaseURL is the public TheMealDB v1 endpoint.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// maxIngredients is the number of strIngredientN/strMeasureN slots a
// meal record carries.
const maxIngredients = 20

// Client talks to TheMealDB API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a new TheMealDB client with the given base URL and
// request timeout.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// mealsEnvelope is the upstream response shape. A confirmed-absent
// record comes back as {"meals": null}, not as a 404.
type mealsEnvelope struct {
	Meals []map[string]interface{} `json:"meals"`
}

// FetchByID looks up a single meal. A confirmed-absent record fails with
// ErrUpstreamNotFound; any transport, status, or payload problem fails
// with ErrUpstreamError.
func (c *Client) FetchByID(ctx context.Context, id int64) (types.Recipe, error) {
	env, err := c.get(ctx, "/lookup.php", url.Values{"i": {strconv.FormatInt(id, 10)}})
	if err != nil {
		return types.Recipe{}, err
	}
	if len(env.Meals) == 0 {
		return types.Recipe{}, fmt.Errorf("%w: mealdb id %d", types.ErrUpstreamNotFound, id)
	}
	return c.toRecipe(env.Meals[0]), nil
}

// Search returns all meals matching the query by name. An empty result
// set is a successful response, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]types.Recipe, error) {
	if query == "" {
		return nil, nil
	}

	env, err := c.get(ctx, "/search.php", url.Values{"s": {query}})
	if err != nil {
		return nil, err
	}

	recipes := make([]types.Recipe, 0, len(env.Meals))
	for _, meal := range env.Meals {
		recipes = append(recipes, c.toRecipe(meal))
	}
	return recipes, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*mealsEnvelope, error) {
	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrUpstreamError, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("mealdb request failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", types.ErrUpstreamError, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("mealdb returned non-OK status",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: mealdb returned status %d", types.ErrUpstreamError, resp.StatusCode)
	}

	var env mealsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: malformed mealdb response: %v", types.ErrUpstreamError, err)
	}
	return &env, nil
}

// toRecipe flattens a raw meal record into the unified recipe model.
// TheMealDB spreads ingredients over strIngredient1..20 with matching
// strMeasureN columns and packs all instructions into one CRLF-separated
// string.
func (c *Client) toRecipe(meal map[string]interface{}) types.Recipe {
	ingredients := make([]string, 0, maxIngredients)
	for i := 1; i <= maxIngredients; i++ {
		ingredient := strings.TrimSpace(str(meal, fmt.Sprintf("strIngredient%d", i)))
		if ingredient == "" {
			continue
		}
		if measure := strings.TrimSpace(str(meal, fmt.Sprintf("strMeasure%d", i))); measure != "" {
			ingredients = append(ingredients, measure+" "+ingredient)
		} else {
			ingredients = append(ingredients, ingredient)
		}
	}

	instructions := str(meal, "strInstructions")
	steps := make([]string, 0)
	for _, step := range strings.Split(instructions, "\r\n") {
		if step = strings.TrimSpace(step); step != "" {
			steps = append(steps, step)
		}
	}
	if len(steps) == 0 {
		if instructions != "" {
			steps = []string{instructions}
		} else {
			steps = []string{"No instructions available"}
		}
	}

	id, err := strconv.ParseInt(str(meal, "idMeal"), 10, 64)
	if err != nil {
		c.logger.Warn("mealdb record has non-numeric id", zap.String("idMeal", str(meal, "idMeal")))
	}

	title := str(meal, "strMeal")
	if title == "" {
		title = "Unknown Recipe"
	}
	cuisine := str(meal, "strArea")
	if cuisine == "" {
		cuisine = "Unknown"
	}

	return types.Recipe{
		ID:          id,
		Title:       title,
		Ingredients: ingredients,
		Steps:       steps,
		// TheMealDB doesn't provide timings or difficulty
		PrepTime:   "Unknown",
		CookTime:   "Unknown",
		Difficulty: "Unknown",
		Cuisine:    cuisine,
		Source:     types.SourceMealDB,
	}
}

func str(meal map[string]interface{}, key string) string {
	if v, ok := meal[key].(string); ok {
		return v
	}
	return ""
}

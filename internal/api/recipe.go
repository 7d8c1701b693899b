package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/recipedex/backend/internal/service"
	"github.com/recipedex/backend/internal/types"
)

// RecipeHandler exposes the recipe catalog over HTTP. Field names and
// paths are the contract the presentation layer is built against.
type RecipeHandler struct {
	agg *service.Aggregator
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(agg *service.Aggregator) *RecipeHandler {
	return &RecipeHandler{agg: agg}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/search", h.SearchRecipes)
		recipes.GET("/internal/:id", h.GetInternalRecipe)
		recipes.GET("/external/:source/:id", h.GetExternalRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.PUT("/internal/:id", h.UpdateRecipe)
	}
}

// ListRecipes returns all internal recipes as a bare JSON array.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.agg.ListRecipes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if recipes == nil {
		recipes = []types.Recipe{}
	}
	c.JSON(http.StatusOK, recipes)
}

// SearchRecipes runs the combined internal+external search.
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	result, err := h.agg.SearchRecipes(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetInternalRecipe returns a single internal recipe by id.
func (h *RecipeHandler) GetInternalRecipe(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	source, _ := types.ParseSource(types.SourceInternal)
	recipe, err := h.agg.GetRecipe(c.Request.Context(), source, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// GetExternalRecipe returns a single external recipe, with cache
// provenance attached.
func (h *RecipeHandler) GetExternalRecipe(c *gin.Context) {
	source, err := types.ParseSource(c.Param("source"))
	if err != nil {
		writeError(c, err)
		return
	}
	if source.Internal() {
		// The internal route is /recipes/internal/:id; routing external
		// lookups by numeric range alone is exactly what the source
		// segment exists to avoid.
		c.JSON(http.StatusNotFound, gin.H{"error": "not an external source"})
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	recipe, err := h.agg.GetRecipe(c.Request.Context(), source, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe creates a new internal recipe.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.agg.CreateRecipe(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe replaces an internal recipe's mutable fields.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	source, _ := types.ParseSource(types.SourceInternal)
	recipe, err := h.agg.UpdateRecipe(c.Request.Context(), source, id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "recipe id must be an integer"})
		return 0, false
	}
	return id, true
}

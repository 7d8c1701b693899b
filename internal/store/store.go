// Package store is the authoritative CRUD store for internal recipes.
// It is the authority, not a performance path: nothing here is cached.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/recipedex/backend/internal/model"
	"github.com/recipedex/backend/internal/types"
)

// RecipeStore handles internal recipe persistence over GORM. Id
// assignment is the database's autoincrement, so concurrent creates can
// never collide and ids are never reused in-process.
type RecipeStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecipeStore creates a new RecipeStore instance
func NewRecipeStore(db *gorm.DB, logger *zap.Logger) *RecipeStore {
	return &RecipeStore{db: db, logger: logger}
}

// Create validates and stores a new internal recipe, returning it with
// its assigned id.
func (s *RecipeStore) Create(ctx context.Context, req types.RecipeRequest) (types.Recipe, error) {
	rec, err := toModel(req)
	if err != nil {
		return types.Recipe{}, err
	}

	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return types.Recipe{}, fmt.Errorf("failed to create recipe: %w", err)
	}

	s.logger.Info("recipe created", zap.Int64("id", rec.ID), zap.String("title", rec.Title))
	return fromModel(rec), nil
}

// Get retrieves an internal recipe by id.
func (s *RecipeStore) Get(ctx context.Context, id int64) (types.Recipe, error) {
	var rec model.Recipe
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.Recipe{}, fmt.Errorf("%w: internal id %d", types.ErrNotFound, id)
		}
		return types.Recipe{}, fmt.Errorf("failed to fetch recipe %d: %w", id, err)
	}
	return fromModel(rec), nil
}

// Update replaces all mutable fields of an existing internal recipe.
// The source tag is not a column; internal recipes cannot change
// provenance.
func (s *RecipeStore) Update(ctx context.Context, id int64, req types.RecipeRequest) (types.Recipe, error) {
	rec, err := toModel(req)
	if err != nil {
		return types.Recipe{}, err
	}

	result := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).
		Select("title", "ingredients", "steps", "prep_time", "cook_time", "difficulty", "cuisine").
		Updates(&rec)
	if result.Error != nil {
		return types.Recipe{}, fmt.Errorf("failed to update recipe %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return types.Recipe{}, fmt.Errorf("%w: internal id %d", types.ErrNotFound, id)
	}

	return s.Get(ctx, id)
}

// List returns all internal recipes in insertion order.
func (s *RecipeStore) List(ctx context.Context) ([]types.Recipe, error) {
	var recs []model.Recipe
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]types.Recipe, len(recs))
	for i := range recs {
		recipes[i] = fromModel(recs[i])
	}
	return recipes, nil
}

// Search matches recipes whose title or any ingredient contains the
// query, case-insensitively.
func (s *RecipeStore) Search(ctx context.Context, query string) ([]types.Recipe, error) {
	if query == "" {
		return nil, nil
	}

	like := "%" + strings.ToLower(query) + "%"
	var recs []model.Recipe
	err := s.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(ingredients) LIKE ?", like, like).
		Order("id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}

	recipes := make([]types.Recipe, len(recs))
	for i := range recs {
		recipes[i] = fromModel(recs[i])
	}
	return recipes, nil
}

// toModel normalizes and validates a request. Ingredients and steps are
// trimmed; blank entries are dropped and the remainder must be non-empty.
func toModel(req types.RecipeRequest) (model.Recipe, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return model.Recipe{}, fmt.Errorf("%w: title must not be empty", types.ErrValidation)
	}

	ingredients := normalize(req.Ingredients)
	if len(ingredients) == 0 {
		return model.Recipe{}, fmt.Errorf("%w: at least one ingredient is required", types.ErrValidation)
	}

	steps := normalize(req.Steps)
	if len(steps) == 0 {
		return model.Recipe{}, fmt.Errorf("%w: at least one step is required", types.ErrValidation)
	}

	if strings.TrimSpace(req.PrepTime) == "" {
		return model.Recipe{}, fmt.Errorf("%w: prepTime is required", types.ErrValidation)
	}
	if strings.TrimSpace(req.CookTime) == "" {
		return model.Recipe{}, fmt.Errorf("%w: cookTime is required", types.ErrValidation)
	}

	return model.Recipe{
		Title:       title,
		Ingredients: ingredients,
		Steps:       steps,
		PrepTime:    strings.TrimSpace(req.PrepTime),
		CookTime:    strings.TrimSpace(req.CookTime),
		Difficulty:  strings.TrimSpace(req.Difficulty),
		Cuisine:     strings.TrimSpace(req.Cuisine),
	}, nil
}

func normalize(items []string) model.JSONStringArray {
	out := make(model.JSONStringArray, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func fromModel(rec model.Recipe) types.Recipe {
	return types.Recipe{
		ID:          rec.ID,
		Title:       rec.Title,
		Ingredients: rec.Ingredients,
		Steps:       rec.Steps,
		PrepTime:    rec.PrepTime,
		CookTime:    rec.CookTime,
		Difficulty:  rec.Difficulty,
		Cuisine:     rec.Cuisine,
		Source:      types.SourceInternal,
	}
}

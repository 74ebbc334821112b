// Package catalog provides the application layer for the recipe and
// ingredient catalog.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/naturalbakery/shop/internal/domain/catalog"
	"github.com/naturalbakery/shop/internal/ports/outbound"
	"github.com/naturalbakery/shop/pkg/errors"
	"go.uber.org/zap"
)

const ingredientCacheKey = "catalog:ingredients:"

// Service implements catalog use cases.
type Service struct {
	recipes     outbound.RecipeRepository
	ingredients outbound.IngredientRepository
	cache       outbound.CacheRepository
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewService creates a new catalog service. cache may be a no-op
// implementation; ingredient rows are seed-only so TTL caching is safe.
func NewService(
	recipes outbound.RecipeRepository,
	ingredients outbound.IngredientRepository,
	cache outbound.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		recipes:     recipes,
		ingredients: ingredients,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger.Named("catalog-service"),
	}
}

// CreateRecipeCommand contains the fields for a new recipe.
type CreateRecipeCommand struct {
	Title        string                     `json:"title"`
	Description  string                     `json:"description"`
	Category     string                     `json:"category"`
	Difficulty   string                     `json:"difficulty"`
	PrepTime     int                        `json:"prep_time"`
	CookTime     int                        `json:"cook_time"`
	Servings     int                        `json:"servings"`
	VideoURL     string                     `json:"video_url"`
	ImageURL     string                     `json:"image_url"`
	Instructions string                     `json:"instructions"`
	Ingredients  []catalog.RecipeIngredient `json:"ingredients"`
}

// UpdateRecipeCommand carries a partial recipe update. Nil fields keep
// their previous values; a non-nil Ingredients slice replaces the whole
// link set.
type UpdateRecipeCommand struct {
	Title        *string                     `json:"title"`
	Description  *string                     `json:"description"`
	Category     *string                     `json:"category"`
	Difficulty   *string                     `json:"difficulty"`
	PrepTime     *int                        `json:"prep_time"`
	CookTime     *int                        `json:"cook_time"`
	Servings     *int                        `json:"servings"`
	VideoURL     *string                     `json:"video_url"`
	ImageURL     *string                     `json:"image_url"`
	Instructions *string                     `json:"instructions"`
	Ingredients  *[]catalog.RecipeIngredient `json:"ingredients"`
}

// ListRecipes returns all recipes, filtered by category when non-empty.
func (s *Service) ListRecipes(ctx context.Context, category string) ([]catalog.RecipeSummary, error) {
	recipes, err := s.recipes.List(ctx, category)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}
	return recipes, nil
}

// GetRecipe returns a recipe and its resolved ingredient list.
func (s *Service) GetRecipe(ctx context.Context, id uint) (*catalog.Recipe, []catalog.ResolvedIngredient, error) {
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		if err == catalog.ErrRecipeNotFound {
			return nil, nil, errors.NewRecipeNotFoundError(id)
		}
		return nil, nil, errors.NewDatabaseError("fetch recipe", err)
	}

	ingredients, err := s.recipes.ResolveIngredients(ctx, id)
	if err != nil {
		return nil, nil, errors.NewDatabaseError("fetch recipe ingredients", err)
	}

	return recipe, ingredients, nil
}

// CreateRecipe validates and persists a new recipe with its ingredient
// links, returning the new id.
func (s *Service) CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (uint, error) {
	recipe := &catalog.Recipe{
		Title:        cmd.Title,
		Description:  cmd.Description,
		Category:     cmd.Category,
		Difficulty:   cmd.Difficulty,
		PrepTime:     cmd.PrepTime,
		CookTime:     cmd.CookTime,
		Servings:     cmd.Servings,
		VideoURL:     cmd.VideoURL,
		ImageURL:     cmd.ImageURL,
		Instructions: cmd.Instructions,
		Ingredients:  cmd.Ingredients,
	}

	if err := recipe.Validate(); err != nil {
		return 0, errors.NewValidationError(err.Error())
	}

	if err := s.recipes.Create(ctx, recipe); err != nil {
		return 0, errors.NewDatabaseError("create recipe", err)
	}

	s.logger.Info("Recipe created",
		zap.Uint("recipe_id", recipe.ID),
		zap.String("title", recipe.Title),
		zap.String("category", recipe.Category),
	)

	return recipe.ID, nil
}

// UpdateRecipe applies a partial update. Unsupplied fields retain their
// previous values; a supplied ingredient list replaces the existing set.
func (s *Service) UpdateRecipe(ctx context.Context, id uint, cmd UpdateRecipeCommand) error {
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		if err == catalog.ErrRecipeNotFound {
			return errors.NewRecipeNotFoundError(id)
		}
		return errors.NewDatabaseError("fetch recipe", err)
	}

	if cmd.Title != nil {
		recipe.Title = *cmd.Title
	}
	if cmd.Description != nil {
		recipe.Description = *cmd.Description
	}
	if cmd.Category != nil {
		recipe.Category = *cmd.Category
	}
	if cmd.Difficulty != nil {
		recipe.Difficulty = *cmd.Difficulty
	}
	if cmd.PrepTime != nil {
		recipe.PrepTime = *cmd.PrepTime
	}
	if cmd.CookTime != nil {
		recipe.CookTime = *cmd.CookTime
	}
	if cmd.Servings != nil {
		recipe.Servings = *cmd.Servings
	}
	if cmd.VideoURL != nil {
		recipe.VideoURL = *cmd.VideoURL
	}
	if cmd.ImageURL != nil {
		recipe.ImageURL = *cmd.ImageURL
	}
	if cmd.Instructions != nil {
		recipe.Instructions = *cmd.Instructions
	}

	replaceIngredients := false
	if cmd.Ingredients != nil {
		recipe.Ingredients = *cmd.Ingredients
		replaceIngredients = true
	}

	if err := recipe.Validate(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := s.recipes.Update(ctx, recipe, replaceIngredients); err != nil {
		return errors.NewDatabaseError("update recipe", err)
	}

	s.logger.Info("Recipe updated",
		zap.Uint("recipe_id", id),
		zap.Bool("ingredients_replaced", replaceIngredients),
	)

	return nil
}

// DeleteRecipe removes a recipe; its ingredient links cascade away.
func (s *Service) DeleteRecipe(ctx context.Context, id uint) error {
	if err := s.recipes.Delete(ctx, id); err != nil {
		if err == catalog.ErrRecipeNotFound {
			return errors.NewRecipeNotFoundError(id)
		}
		return errors.NewDatabaseError("delete recipe", err)
	}

	s.logger.Info("Recipe deleted", zap.Uint("recipe_id", id))
	return nil
}

// ListIngredients returns ingredients, optionally filtered by category.
// Results pass through the cache since the table only changes via seeding.
func (s *Service) ListIngredients(ctx context.Context, category string) ([]catalog.Ingredient, error) {
	key := ingredientCacheKey + category

	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var ingredients []catalog.Ingredient
		if err := json.Unmarshal(cached, &ingredients); err == nil {
			return ingredients, nil
		}
	}

	ingredients, err := s.ingredients.List(ctx, category)
	if err != nil {
		return nil, errors.NewDatabaseError("list ingredients", err)
	}

	if payload, err := json.Marshal(ingredients); err == nil {
		if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
			s.logger.Debug("Ingredient cache write failed", zap.Error(err))
		}
	}

	return ingredients, nil
}

// GetIngredient returns a single ingredient by id.
func (s *Service) GetIngredient(ctx context.Context, id uint) (*catalog.Ingredient, error) {
	ingredient, err := s.ingredients.FindByID(ctx, id)
	if err != nil {
		if err == catalog.ErrIngredientNotFound {
			return nil, errors.NewIngredientNotFoundError(id)
		}
		return nil, errors.NewDatabaseError(fmt.Sprintf("fetch ingredient %d", id), err)
	}
	return ingredient, nil
}

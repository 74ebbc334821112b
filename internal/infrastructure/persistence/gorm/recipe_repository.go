package gorm

import (
	"context"
	"errors"

	"github.com/naturalbakery/shop/internal/domain/catalog"
	"github.com/naturalbakery/shop/internal/ports/outbound"
	"gorm.io/gorm"
)

// RecipeRepository implements the recipe repository interface using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// recipeSummaryRow carries the list query result including the joined
// ingredient count.
type recipeSummaryRow struct {
	RecipeModel
	IngredientCount int
}

// List returns all recipes newest first, each with its ingredient count.
func (r *RecipeRepository) List(ctx context.Context, category string) ([]catalog.RecipeSummary, error) {
	var rows []recipeSummaryRow

	query := r.db.WithContext(ctx).
		Model(&RecipeModel{}).
		Select("recipes.*, COUNT(recipe_ingredients.id) AS ingredient_count").
		Joins("LEFT JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
		Group("recipes.id").
		Order("recipes.created_at DESC")

	if category != "" {
		query = query.Where("recipes.category = ?", category)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]catalog.RecipeSummary, len(rows))
	for i, row := range rows {
		summaries[i] = catalog.RecipeSummary{
			Recipe:          *ModelToRecipe(&row.RecipeModel),
			IngredientCount: row.IngredientCount,
		}
	}
	return summaries, nil
}

// FindByID finds a recipe by ID without resolving its ingredient links.
func (r *RecipeRepository) FindByID(ctx context.Context, id uint) (*catalog.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrRecipeNotFound
		}
		return nil, result.Error
	}

	return ModelToRecipe(&model), nil
}

// ResolveIngredients returns the recipe's ingredient links joined with the
// ingredient rows they reference, in link insertion order.
func (r *RecipeRepository) ResolveIngredients(ctx context.Context, recipeID uint) ([]catalog.ResolvedIngredient, error) {
	var links []RecipeIngredientModel

	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Order("id ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	resolved := make([]catalog.ResolvedIngredient, len(links))
	for i, link := range links {
		resolved[i] = catalog.ResolvedIngredient{
			ID:             link.Ingredient.ID,
			Name:           link.Ingredient.Name,
			Category:       link.Ingredient.Category,
			PricePerUnit:   link.Ingredient.PricePerUnit,
			IngredientUnit: link.Ingredient.Unit,
			ImageURL:       link.Ingredient.ImageURL,
			Quantity:       link.Quantity,
			Unit:           link.Unit,
		}
	}
	return resolved, nil
}

// Create inserts the recipe and its ingredient links in one transaction.
func (r *RecipeRepository) Create(ctx context.Context, recipe *catalog.Recipe) error {
	model := RecipeToModel(recipe)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	recipe.ID = model.ID
	recipe.CreatedAt = model.CreatedAt
	recipe.UpdatedAt = model.UpdatedAt
	return nil
}

// Update saves the recipe row. When replaceIngredients is true the link
// set is replaced wholesale inside the same transaction.
func (r *RecipeRepository) Update(ctx context.Context, recipe *catalog.Recipe, replaceIngredients bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := RecipeToModel(recipe)
		links := model.Ingredients
		model.Ingredients = nil

		if err := tx.Omit("CreatedAt").Save(model).Error; err != nil {
			return err
		}

		if !replaceIngredients {
			return nil
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&RecipeIngredientModel{}).Error; err != nil {
			return err
		}
		if len(links) == 0 {
			return nil
		}
		for i := range links {
			links[i].ID = 0
			links[i].RecipeID = recipe.ID
		}
		return tx.Create(&links).Error
	})
}

// Delete removes the recipe and its ingredient links.
func (r *RecipeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&RecipeModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return catalog.ErrRecipeNotFound
		}
		// Explicit cleanup for drivers that skip FK cascades.
		return tx.Where("recipe_id = ?", id).Delete(&RecipeIngredientModel{}).Error
	})
}

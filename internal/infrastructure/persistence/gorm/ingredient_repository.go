package gorm

import (
	"context"
	"errors"

	"github.com/naturalbakery/shop/internal/domain/catalog"
	"github.com/naturalbakery/shop/internal/ports/outbound"
	"gorm.io/gorm"
)

// IngredientRepository implements ingredient reads using GORM
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) outbound.IngredientRepository {
	return &IngredientRepository{db: db}
}

// List returns all ingredients ordered by id, optionally filtered by
// category.
func (r *IngredientRepository) List(ctx context.Context, category string) ([]catalog.Ingredient, error) {
	var models []IngredientModel

	query := r.db.WithContext(ctx).Order("id ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	ingredients := make([]catalog.Ingredient, len(models))
	for i := range models {
		ingredients[i] = ModelToIngredient(&models[i])
	}
	return ingredients, nil
}

// FindByID finds an ingredient by ID
func (r *IngredientRepository) FindByID(ctx context.Context, id uint) (*catalog.Ingredient, error) {
	var model IngredientModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrIngredientNotFound
		}
		return nil, result.Error
	}

	ingredient := ModelToIngredient(&model)
	return &ingredient, nil
}

// FindByIDs returns matching ingredients keyed by id. Ids that do not
// exist are simply absent from the result.
func (r *IngredientRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]catalog.Ingredient, error) {
	if len(ids) == 0 {
		return map[uint]catalog.Ingredient{}, nil
	}

	var models []IngredientModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]catalog.Ingredient, len(models))
	for i := range models {
		byID[models[i].ID] = ModelToIngredient(&models[i])
	}
	return byID, nil
}

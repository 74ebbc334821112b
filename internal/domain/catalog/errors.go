package catalog

import "errors"

// Domain errors for catalog operations

var (
	ErrTitleRequired      = errors.New("recipe title is required")
	ErrCategoryRequired   = errors.New("recipe category is required")
	ErrInvalidCategory    = errors.New("recipe category must be パン or 洋菓子")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
)

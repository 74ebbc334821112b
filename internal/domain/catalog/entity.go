// Package catalog contains the core domain logic for the recipe and
// ingredient catalog.
package catalog

import "time"

// Category is a recipe category. The catalog recognizes exactly two.
type Category string

const (
	CategoryBread  Category = "パン"
	CategoryPastry Category = "洋菓子"
)

// ValidCategory reports whether c is one of the allowed recipe categories.
func ValidCategory(c string) bool {
	switch Category(c) {
	case CategoryBread, CategoryPastry:
		return true
	}
	return false
}

// Ingredient is a purchasable base ingredient. Rows are seed-managed;
// there is no ingredient write API.
type Ingredient struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	PricePerUnit float64 `json:"price_per_unit"`
	ImageURL     string  `json:"image_url"`
}

// Recipe is a bakery recipe with its ingredient requirements.
type Recipe struct {
	ID           uint               `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Category     string             `json:"category"`
	Difficulty   string             `json:"difficulty"`
	PrepTime     int                `json:"prep_time"`
	CookTime     int                `json:"cook_time"`
	Servings     int                `json:"servings"`
	VideoURL     string             `json:"video_url"`
	ImageURL     string             `json:"image_url"`
	Instructions string             `json:"instructions"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	Ingredients  []RecipeIngredient `json:"-"`
}

// RecipeIngredient links a recipe to an ingredient with a recipe-specific
// quantity and unit. The set is replaced wholesale on update, never diffed.
type RecipeIngredient struct {
	IngredientID uint    `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

// RecipeSummary is a recipe annotated with its linked ingredient count,
// as returned by the list endpoint.
type RecipeSummary struct {
	Recipe
	IngredientCount int `json:"ingredient_count"`
}

// ResolvedIngredient joins a recipe ingredient with the ingredient row it
// references. Field names follow the wire format of the detail endpoint:
// unit is the recipe-specific unit, ingredient_unit the base one.
type ResolvedIngredient struct {
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	PricePerUnit   float64 `json:"price_per_unit"`
	IngredientUnit string  `json:"ingredient_unit"`
	Category       string  `json:"category"`
	ImageURL       string  `json:"image_url"`
}

// Validate checks the invariants required to persist a recipe.
func (r *Recipe) Validate() error {
	if r.Title == "" {
		return ErrTitleRequired
	}
	if r.Category == "" {
		return ErrCategoryRequired
	}
	if !ValidCategory(r.Category) {
		return ErrInvalidCategory
	}
	return nil
}

package handlers

import (
	"encoding/json"
	"net/http"

	appcatalog "github.com/naturalbakery/shop/internal/application/catalog"
	"github.com/naturalbakery/shop/internal/domain/catalog"
	"github.com/naturalbakery/shop/internal/ports/inbound"
	"github.com/naturalbakery/shop/pkg/errors"
	"go.uber.org/zap"
)

// CatalogHandlers handles recipe and ingredient API requests
type CatalogHandlers struct {
	catalog inbound.CatalogService
	logger  *zap.Logger
}

// NewCatalogHandlers creates a new catalog handlers instance
func NewCatalogHandlers(catalogService inbound.CatalogService, logger *zap.Logger) *CatalogHandlers {
	return &CatalogHandlers{
		catalog: catalogService,
		logger:  logger.Named("catalog-handlers"),
	}
}

// ListRecipes handles GET /api/recipes
func (h *CatalogHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	recipes, err := h.catalog.ListRecipes(r.Context(), category)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"recipes": recipes})
}

// GetRecipe handles GET /api/recipes/{id}
func (h *CatalogHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	recipe, ingredients, err := h.catalog.GetRecipe(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"recipe":      recipe,
		"ingredients": ingredients,
	})
}

// CreateRecipe handles POST /api/recipes (admin)
func (h *CatalogHandlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var cmd appcatalog.CreateRecipeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON payload"))
		return
	}

	id, err := h.catalog.CreateRecipe(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Recipe created successfully",
		"recipe_id": id,
	})
}

// UpdateRecipe handles PUT /api/recipes/{id} (admin)
func (h *CatalogHandlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var cmd appcatalog.UpdateRecipeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON payload"))
		return
	}

	if err := h.catalog.UpdateRecipe(r.Context(), id, cmd); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Recipe updated successfully",
	})
}

// DeleteRecipe handles DELETE /api/recipes/{id} (admin)
func (h *CatalogHandlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.catalog.DeleteRecipe(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Recipe deleted successfully",
	})
}

// ListIngredients handles GET /api/ingredients
func (h *CatalogHandlers) ListIngredients(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	ingredients, err := h.catalog.ListIngredients(r.Context(), category)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if ingredients == nil {
		ingredients = []catalog.Ingredient{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ingredients": ingredients})
}

// GetIngredient handles GET /api/ingredients/{id}
func (h *CatalogHandlers) GetIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	ingredient, err := h.catalog.GetIngredient(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ingredient": ingredient})
}

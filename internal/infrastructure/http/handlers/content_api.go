package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/naturalbakery/shop/internal/ports/inbound"
	"github.com/naturalbakery/shop/internal/ports/outbound"
	"github.com/naturalbakery/shop/pkg/errors"
	"go.uber.org/zap"
)

// ContentHandlers serves generated shop content through the pluggable
// content provider.
type ContentHandlers struct {
	catalog  inbound.CatalogService
	provider outbound.ContentProvider
	logger   *zap.Logger
}

// NewContentHandlers creates a new content handlers instance
func NewContentHandlers(
	catalogService inbound.CatalogService,
	provider outbound.ContentProvider,
	logger *zap.Logger,
) *ContentHandlers {
	return &ContentHandlers{
		catalog:  catalogService,
		provider: provider,
		logger:   logger.Named("content-handlers"),
	}
}

// ArrangeRequest carries the free-form customization request.
type ArrangeRequest struct {
	Request string `json:"request"`
}

// Arrange handles POST /api/recipes/{id}/arrange
func (h *ContentHandlers) Arrange(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	recipe, _, err := h.catalog.GetRecipe(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req ArrangeRequest
	if r.Body != nil {
		// An empty body means no special request.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	arrangement, err := h.provider.GenerateArrangement(r.Context(), recipe, req.Request)
	if err != nil {
		writeError(w, h.logger, errors.Wrap(err, "Failed to generate arrangement"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"arrangement": arrangement})
}

// Trends handles GET /api/trends
func (h *ContentHandlers) Trends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.provider.TrendingKeywords(r.Context())
	if err != nil {
		writeError(w, h.logger, errors.Wrap(err, "Failed to fetch trends"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"trends": trends})
}

// LocalShops handles GET /api/local-shops
func (h *ContentHandlers) LocalShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.provider.LocalShops(r.Context())
	if err != nil {
		writeError(w, h.logger, errors.Wrap(err, "Failed to fetch local shops"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"shops": shops})
}

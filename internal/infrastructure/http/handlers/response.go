// Package handlers provides the HTTP handlers for the shop API.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/naturalbakery/shop/pkg/errors"
	"go.uber.org/zap"
)

// writeJSON serializes the payload with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps any error to its HTTP status and the `{error}` wire
// shape. Internal causes are logged, never serialized.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	appErr := errors.GetAppError(err)

	if appErr.StatusCode() >= http.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("code", string(appErr.Code)),
			zap.String("message", appErr.Message),
			zap.Error(appErr.Cause),
		)
	}

	writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr))
}

// pathID parses the named uint path parameter.
func pathID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError("Invalid " + name)
	}
	return uint(id), nil
}

package handlers

import (
	"net/http"
	"time"

	"gorm.io/gorm"
)

// HealthHandlers serves liveness and readiness probes.
type HealthHandlers struct {
	db      *gorm.DB
	version string
}

// NewHealthHandlers creates a new health handlers instance
func NewHealthHandlers(db *gorm.DB, version string) *HealthHandlers {
	return &HealthHandlers{db: db, version: version}
}

// Health handles GET /health. It reports degraded when the database ping
// fails but still answers, so orchestrators can tell the two states apart.
func (h *HealthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(r.Context()) != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]interface{}{
		"status":    status,
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

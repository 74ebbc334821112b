package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	appauth "github.com/naturalbakery/shop/internal/application/auth"
	"github.com/naturalbakery/shop/internal/infrastructure/http/middleware"
	"github.com/naturalbakery/shop/internal/ports/inbound"
	"github.com/naturalbakery/shop/pkg/errors"
	"go.uber.org/zap"
)

// AuthHandlers handles authentication API requests
type AuthHandlers struct {
	auth       inbound.AuthService
	cookieName string
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewAuthHandlers creates a new authentication handlers instance
func NewAuthHandlers(authService inbound.AuthService, cookieName string, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		auth:       authService,
		cookieName: cookieName,
		validate:   validator.New(),
		logger:     logger.Named("auth-handlers"),
	}
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username     string `json:"username" validate:"required,min=3,max=100"`
	Password     string `json:"password" validate:"required,min=8"`
	BusinessName string `json:"business_name" validate:"required"`
	BusinessType string `json:"business_type" validate:"required"`
	OwnerName    string `json:"owner_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// LoginRequest represents a user login request
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /api/auth/register
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON payload"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	public, err := h.auth.Register(r.Context(), appauth.RegisterCommand{
		Username:     req.Username,
		Password:     req.Password,
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		OwnerName:    req.OwnerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Registration successful",
		"user":    public,
	})
}

// Login handles POST /api/auth/login. On success the opaque session token
// is set as an HttpOnly cookie; it never appears in the response body.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON payload"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.ExpiresAt,
		MaxAge:   int(time.Until(result.ExpiresAt).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    result.User,
	})
}

// Logout handles POST /api/auth/logout. The session row is removed and
// the cookie cleared; a missing or stale cookie still succeeds.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	token := ""
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		token = cookie.Value
	}

	if err := h.auth.Logout(r.Context(), token); err != nil {
		writeError(w, h.logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Logout successful",
	})
}

// Me handles GET /api/auth/me. The route sits behind the session guard,
// so the principal is always on the context here. The response carries
// the full public user projection, not just the principal fields.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError("Authentication required"))
		return
	}

	public, err := h.auth.CurrentUser(r.Context(), principal.UserID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": public,
	})
}

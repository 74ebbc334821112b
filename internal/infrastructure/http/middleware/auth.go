package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/naturalbakery/shop/internal/application/auth"
	"github.com/naturalbakery/shop/internal/ports/inbound"
	"github.com/naturalbakery/shop/pkg/errors"
	"go.uber.org/zap"
)

type contextKey string

const principalKey contextKey = "principal"

// Guard resolves the session cookie into a request principal.
type Guard struct {
	auth   inbound.AuthService
	cookie string
	logger *zap.Logger
}

// NewGuard creates a new auth guard
func NewGuard(authService inbound.AuthService, cookieName string, logger *zap.Logger) *Guard {
	return &Guard{
		auth:   authService,
		cookie: cookieName,
		logger: logger.Named("auth-guard"),
	}
}

// RequireSession rejects requests without a valid session cookie and puts
// the resolved principal on the request context.
func (g *Guard) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := g.resolve(r)
		if err != nil {
			writeGuardError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), principal)))
	})
}

// RequireAdmin rejects requests without a valid session, and valid
// sessions whose user does not hold the admin role.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := g.resolve(r)
		if err != nil {
			writeGuardError(w, err)
			return
		}

		if !principal.IsAdmin() {
			writeGuardError(w, errors.NewForbiddenError("Admin access required"))
			return
		}

		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), principal)))
	})
}

func (g *Guard) resolve(r *http.Request) (*auth.Principal, error) {
	cookie, err := r.Cookie(g.cookie)
	if err != nil {
		return nil, errors.NewUnauthorizedError("Authentication required")
	}

	principal, err := g.auth.Resolve(r.Context(), cookie.Value)
	if err != nil {
		return nil, err
	}
	return principal, nil
}

func withPrincipal(ctx context.Context, p *auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the authenticated principal placed on the
// context by the guard.
func PrincipalFromContext(ctx context.Context) (*auth.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*auth.Principal)
	return p, ok
}

func writeGuardError(w http.ResponseWriter, err error) {
	appErr := errors.GetAppError(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	json.NewEncoder(w).Encode(errors.ToErrorResponse(appErr))
}

// Package auth provides registration, login and session resolution.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/naturalbakery/shop/internal/domain/user"
	"github.com/naturalbakery/shop/internal/ports/outbound"
	"github.com/naturalbakery/shop/pkg/errors"
	"go.uber.org/zap"
)

// Service implements authentication use cases over opaque session tokens.
type Service struct {
	users      outbound.UserRepository
	sessions   outbound.SessionRepository
	sessionTTL time.Duration
	bcryptCost int
	logger     *zap.Logger
}

// NewService creates a new auth service.
func NewService(
	users outbound.UserRepository,
	sessions outbound.SessionRepository,
	sessionTTL time.Duration,
	bcryptCost int,
	logger *zap.Logger,
) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
		logger:     logger.Named("auth-service"),
	}
}

// RegisterCommand contains the fields for a new account.
type RegisterCommand struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	BusinessName string `json:"business_name"`
	BusinessType string `json:"business_type"`
	OwnerName    string `json:"owner_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// LoginResult carries the session token to be set as a cookie along with
// the authenticated user's public projection.
type LoginResult struct {
	User      user.Public
	Token     string
	ExpiresAt time.Time
}

// Principal identifies the authenticated caller of a request.
type Principal struct {
	UserID   uint
	Username string
	Role     user.Role
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p.Role == user.RoleAdmin
}

// Register creates an account with a bcrypt password hash. Username and
// email collisions are rejected before the insert so the caller gets a
// specific conflict message.
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*user.Public, error) {
	u, err := user.NewUser(
		cmd.Username, cmd.Password,
		cmd.BusinessName, cmd.BusinessType, cmd.OwnerName,
		cmd.Email, s.bcryptCost,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	u.Phone = cmd.Phone
	u.Address = cmd.Address

	if existing, err := s.users.FindByUsername(ctx, u.Username); err == nil && existing != nil {
		return nil, errors.NewUsernameAlreadyExistsError(u.Username)
	} else if err != nil && err != user.ErrUserNotFound {
		return nil, errors.NewDatabaseError("check username", err)
	}

	if existing, err := s.users.FindByEmail(ctx, u.Email); err == nil && existing != nil {
		return nil, errors.NewEmailAlreadyExistsError(u.Email)
	} else if err != nil && err != user.ErrUserNotFound {
		return nil, errors.NewDatabaseError("check email", err)
	}

	// The pre-checks race with concurrent registrations; the unique
	// indexes are the real guard, so a duplicate insert is still a 409.
	if err := s.users.Create(ctx, u); err != nil {
		if err == user.ErrUsernameTaken {
			return nil, errors.NewUsernameAlreadyExistsError(u.Username)
		}
		return nil, errors.NewDatabaseError("create user", err)
	}

	s.logger.Info("User registered",
		zap.Uint("user_id", u.ID),
		zap.String("username", u.Username),
	)

	public := u.Public()
	return &public, nil
}

// Login verifies the credentials and opens a new session. Unknown
// usernames and wrong passwords produce the same error so the response
// does not reveal which accounts exist.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if err == user.ErrUserNotFound {
			return nil, errors.NewInvalidCredentialsError()
		}
		return nil, errors.NewDatabaseError("fetch user", err)
	}

	if err := u.CheckPassword(password); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	token, err := generateToken()
	if err != nil {
		return nil, errors.NewInternalError("failed to generate session token")
	}

	session := &user.Session{
		UserID:    u.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, errors.NewDatabaseError("create session", err)
	}

	s.sweepExpired(ctx)

	s.logger.Info("User logged in",
		zap.Uint("user_id", u.ID),
		zap.String("username", u.Username),
	)

	return &LoginResult{
		User:      u.Public(),
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout destroys the session for the given token. A token that no longer
// resolves to a session is not an error; logout is idempotent.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.DeleteByToken(ctx, token); err != nil && err != user.ErrSessionNotFound {
		return errors.NewDatabaseError("delete session", err)
	}
	return nil
}

// Resolve maps a session token to the authenticated principal. Expired and
// unknown tokens both resolve to a session-invalid error.
func (s *Service) Resolve(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, errors.NewSessionInvalidError()
	}

	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if err == user.ErrSessionNotFound {
			return nil, errors.NewSessionInvalidError()
		}
		return nil, errors.NewDatabaseError("fetch session", err)
	}
	if !session.Valid(time.Now()) {
		return nil, errors.NewSessionInvalidError()
	}

	u, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return nil, errors.NewSessionInvalidError()
		}
		return nil, errors.NewDatabaseError("fetch user", err)
	}

	return &Principal{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	}, nil
}

// CurrentUser returns the full public projection for an authenticated
// user id, as resolved by the session guard.
func (s *Service) CurrentUser(ctx context.Context, userID uint) (*user.Public, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return nil, errors.NewSessionInvalidError()
		}
		return nil, errors.NewDatabaseError("fetch user", err)
	}

	public := u.Public()
	return &public, nil
}

// sweepExpired opportunistically removes expired sessions. Failures are
// logged and otherwise ignored; the validity check in Resolve is the
// actual enforcement.
func (s *Service) sweepExpired(ctx context.Context) {
	removed, err := s.sessions.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.logger.Debug("Session sweep failed", zap.Error(err))
		return
	}
	if removed > 0 {
		s.logger.Debug(fmt.Sprintf("Removed %d expired sessions", removed))
	}
}

// generateToken produces a 32-byte random token encoded as URL-safe
// base64, matching the entropy of a v4 UUID pair.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/naturalbakery/shop/internal/domain/user"
	"github.com/naturalbakery/shop/internal/ports/outbound"
	"gorm.io/gorm"
)

// SessionRepository implements session persistence using GORM
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) outbound.SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(ctx context.Context, s *user.Session) error {
	model := SessionToModel(s)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	s.ID = model.ID
	s.CreatedAt = model.CreatedAt
	return nil
}

// FindByToken finds a session by its opaque token
func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*user.Session, error) {
	var model SessionModel

	result := r.db.WithContext(ctx).First(&model, "token = ?", token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrSessionNotFound
		}
		return nil, result.Error
	}

	return ModelToSession(&model), nil
}

// DeleteByToken removes the session for the given token
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).Where("token = ?", token).Delete(&SessionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return user.ErrSessionNotFound
	}
	return nil
}

// DeleteExpired removes all sessions that expired before the given time
// and reports how many were removed.
func (r *SessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", before).Delete(&SessionModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

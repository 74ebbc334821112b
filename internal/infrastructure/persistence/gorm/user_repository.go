package gorm

import (
	"context"
	"errors"

	"github.com/naturalbakery/shop/internal/domain/user"
	"github.com/naturalbakery/shop/internal/ports/outbound"
	"gorm.io/gorm"
)

// UserRepository implements user persistence using GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) outbound.UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := UserToModel(u)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.ErrUsernameTaken
		}
		return err
	}

	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	return nil
}

// FindByID finds a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, result.Error
	}

	return ModelToUser(&model), nil
}

// FindByUsername finds a user by username
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var model UserModel

	result := r.db.WithContext(ctx).First(&model, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, result.Error
	}

	return ModelToUser(&model), nil
}

// FindByEmail finds a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel

	result := r.db.WithContext(ctx).First(&model, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, result.Error
	}

	return ModelToUser(&model), nil
}

// List returns all registered users ordered by registration time.
func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	var models []UserModel

	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	users := make([]user.User, len(models))
	for i := range models {
		users[i] = *ModelToUser(&models[i])
	}
	return users, nil
}

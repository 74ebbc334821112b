// Package user defines the user and session domain entities
package user

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role represents the role of a user
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered shop customer. Passwords are stored only as
// bcrypt hashes.
type User struct {
	ID           uint
	Username     string
	PasswordHash string
	BusinessName string
	BusinessType string
	OwnerName    string
	Email        string
	Phone        string
	Address      string
	Role         Role
	CreatedAt    time.Time
}

// NewUser creates a user with a hashed password, validating required fields.
func NewUser(username, password, businessName, businessType, ownerName, email string, bcryptCost int) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || password == "" || businessName == "" ||
		businessType == "" || ownerName == "" || email == "" {
		return nil, ErrMissingFields
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return &User{
		Username:     username,
		PasswordHash: string(hash),
		BusinessName: businessName,
		BusinessType: businessType,
		OwnerName:    ownerName,
		Email:        email,
		Role:         RoleUser,
		CreatedAt:    time.Now(),
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Public returns the projection of the user that is safe to serialize.
func (u *User) Public() Public {
	return Public{
		ID:           u.ID,
		Username:     u.Username,
		BusinessName: u.BusinessName,
		BusinessType: u.BusinessType,
		OwnerName:    u.OwnerName,
		Email:        u.Email,
		Phone:        u.Phone,
		Address:      u.Address,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}

// Public is the user projection exposed over the API. It never carries the
// password hash.
type Public struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	BusinessName string    `json:"business_name"`
	BusinessType string    `json:"business_type"`
	OwnerName    string    `json:"owner_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is an opaque-token login session. A session is valid iff its
// expiry lies in the future; multiple concurrent sessions per user are
// allowed.
type Session struct {
	ID        uint
	UserID    uint
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Valid reports whether the session has not expired at the given instant.
func (s *Session) Valid(now time.Time) bool {
	return s.ExpiresAt.After(now)
}

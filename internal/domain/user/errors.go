package user

import "errors"

// Domain errors for user and session operations

var (
	ErrMissingFields      = errors.New("username, password, business name, business type, owner name and email are required")
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")
)

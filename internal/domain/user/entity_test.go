package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("bakery1", "secret-password", "ベーカリー小麦", "bakery", "山田太郎", "taro@example.com", bcrypt.MinCost)
	require.NoError(t, err)

	assert.Equal(t, "bakery1", u.Username)
	assert.Equal(t, RoleUser, u.Role)
	assert.NotEqual(t, "secret-password", u.PasswordHash)
	assert.NoError(t, u.CheckPassword("secret-password"))
	assert.ErrorIs(t, u.CheckPassword("wrong"), ErrInvalidCredentials)
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("", "pw", "b", "t", "o", "e@example.com", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = NewUser("u", "", "b", "t", "o", "e@example.com", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = NewUser("u", "pw", "b", "t", "o", "not-an-email", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestPublicOmitsPasswordHash(t *testing.T) {
	u, err := NewUser("bakery1", "secret-password", "ベーカリー小麦", "bakery", "山田太郎", "taro@example.com", bcrypt.MinCost)
	require.NoError(t, err)

	public := u.Public()
	assert.Equal(t, u.Username, public.Username)
	assert.Equal(t, u.Email, public.Email)
	assert.Equal(t, string(u.Role), public.Role)
}

func TestIsAdmin(t *testing.T) {
	u := &User{Role: RoleUser}
	assert.False(t, u.IsAdmin())

	u.Role = RoleAdmin
	assert.True(t, u.IsAdmin())
}

func TestSessionValid(t *testing.T) {
	now := time.Now()

	s := &Session{ExpiresAt: now.Add(time.Hour)}
	assert.True(t, s.Valid(now))

	s.ExpiresAt = now.Add(-time.Second)
	assert.False(t, s.Valid(now))

	s.ExpiresAt = now
	assert.False(t, s.Valid(now))
}

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	appauth "github.com/naturalbakery/shop/internal/application/auth"
	"github.com/naturalbakery/shop/internal/domain/user"
	gormRepo "github.com/naturalbakery/shop/internal/infrastructure/persistence/gorm"
	"github.com/naturalbakery/shop/pkg/errors"
	"github.com/naturalbakery/shop/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newService(t *testing.T, ttl time.Duration) (*appauth.Service, *gorm.DB) {
	t.Helper()

	db := testutils.SetupTestDB(t)
	svc := appauth.NewService(
		gormRepo.NewUserRepository(db),
		gormRepo.NewSessionRepository(db),
		ttl,
		bcrypt.MinCost,
		zap.NewNop(),
	)
	return svc, db
}

func registerCommand(username, email string) appauth.RegisterCommand {
	return appauth.RegisterCommand{
		Username:     username,
		Password:     "password1234",
		BusinessName: "ベーカリー小麦",
		BusinessType: "bakery",
		OwnerName:    "山田太郎",
		Email:        email,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newService(t, time.Hour)
	ctx := context.Background()

	public, err := svc.Register(ctx, registerCommand("bakery1", "taro@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "bakery1", public.Username)
	assert.Equal(t, "user", public.Role)

	result, err := svc.Login(ctx, "bakery1", "password1234")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.True(t, result.ExpiresAt.After(time.Now()))
	assert.Equal(t, "bakery1", result.User.Username)
}

func TestRegisterConflicts(t *testing.T) {
	svc, _ := newService(t, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerCommand("bakery1", "taro@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerCommand("bakery1", "other@example.com"))
	assert.True(t, errors.Is(err, errors.CodeUsernameAlreadyExists))

	_, err = svc.Register(ctx, registerCommand("bakery2", "taro@example.com"))
	assert.True(t, errors.Is(err, errors.CodeEmailAlreadyExists))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newService(t, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerCommand("bakery1", "taro@example.com"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, "bakery1", "wrong-password")
	assert.True(t, errors.Is(err, errors.CodeInvalidCredentials))

	// Unknown username yields the same error as a wrong password.
	_, err = svc.Login(ctx, "nobody", "password1234")
	assert.True(t, errors.Is(err, errors.CodeInvalidCredentials))
}

func TestResolveRoundTrip(t *testing.T) {
	svc, _ := newService(t, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerCommand("bakery1", "taro@example.com"))
	require.NoError(t, err)

	result, err := svc.Login(ctx, "bakery1", "password1234")
	require.NoError(t, err)

	principal, err := svc.Resolve(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, "bakery1", principal.Username)
	assert.Equal(t, user.RoleUser, principal.Role)
	assert.False(t, principal.IsAdmin())

	require.NoError(t, svc.Logout(ctx, result.Token))

	_, err = svc.Resolve(ctx, result.Token)
	assert.True(t, errors.Is(err, errors.CodeSessionInvalid))
}

func TestRegisterRandomizedAccounts(t *testing.T) {
	svc, _ := newService(t, time.Hour)
	ctx := context.Background()
	faker := gofakeit.New(11)

	for i := 0; i < 5; i++ {
		username, password, businessName, businessType, ownerName, email := testutils.FakeRegistration(faker)

		public, err := svc.Register(ctx, appauth.RegisterCommand{
			Username:     username,
			Password:     password,
			BusinessName: businessName,
			BusinessType: businessType,
			OwnerName:    ownerName,
			Email:        email,
		})
		require.NoError(t, err)
		assert.Equal(t, username, public.Username)
		assert.Equal(t, businessName, public.BusinessName)

		result, err := svc.Login(ctx, username, password)
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	}
}

func TestCurrentUserReturnsFullProjection(t *testing.T) {
	svc, _ := newService(t, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerCommand("bakery1", "taro@example.com"))
	require.NoError(t, err)

	result, err := svc.Login(ctx, "bakery1", "password1234")
	require.NoError(t, err)

	principal, err := svc.Resolve(ctx, result.Token)
	require.NoError(t, err)

	public, err := svc.CurrentUser(ctx, principal.UserID)
	require.NoError(t, err)
	assert.Equal(t, "bakery1", public.Username)
	assert.Equal(t, "ベーカリー小麦", public.BusinessName)
	assert.Equal(t, "bakery", public.BusinessType)
	assert.Equal(t, "山田太郎", public.OwnerName)
	assert.Equal(t, "taro@example.com", public.Email)

	_, err = svc.CurrentUser(ctx, 9999)
	assert.True(t, errors.Is(err, errors.CodeSessionInvalid))
}

func TestDuplicateInsertYieldsConflict(t *testing.T) {
	// Bypasses the service pre-checks to hit the unique index directly,
	// as a concurrent registration would.
	db := testutils.SetupTestDB(t)
	repo := gormRepo.NewUserRepository(db)
	ctx := context.Background()

	first, err := user.NewUser("bakery1", "password1234", "ベーカリー小麦", "bakery", "山田太郎", "taro@example.com", bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := user.NewUser("bakery1", "password1234", "別の店", "bakery", "佐藤花子", "hanako@example.com", bcrypt.MinCost)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, second), user.ErrUsernameTaken)
}

func TestResolveRejectsExpiredSession(t *testing.T) {
	svc, _ := newService(t, -time.Minute)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerCommand("bakery1", "taro@example.com"))
	require.NoError(t, err)

	result, err := svc.Login(ctx, "bakery1", "password1234")
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, result.Token)
	assert.True(t, errors.Is(err, errors.CodeSessionInvalid))
}

func TestResolveRejectsUnknownToken(t *testing.T) {
	svc, _ := newService(t, time.Hour)

	_, err := svc.Resolve(context.Background(), "no-such-token")
	assert.True(t, errors.Is(err, errors.CodeSessionInvalid))

	_, err = svc.Resolve(context.Background(), "")
	assert.True(t, errors.Is(err, errors.CodeSessionInvalid))
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _ := newService(t, time.Hour)
	ctx := context.Background()

	assert.NoError(t, svc.Logout(ctx, ""))
	assert.NoError(t, svc.Logout(ctx, "stale-token"))
}

func TestTokensAreUniquePerLogin(t *testing.T) {
	svc, _ := newService(t, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerCommand("bakery1", "taro@example.com"))
	require.NoError(t, err)

	first, err := svc.Login(ctx, "bakery1", "password1234")
	require.NoError(t, err)
	second, err := svc.Login(ctx, "bakery1", "password1234")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)

	// Both sessions stay valid; logins do not revoke each other.
	_, err = svc.Resolve(ctx, first.Token)
	assert.NoError(t, err)
	_, err = svc.Resolve(ctx, second.Token)
	assert.NoError(t, err)
}

func TestLoginSweepsExpiredSessions(t *testing.T) {
	svc, db := newService(t, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerCommand("bakery1", "taro@example.com"))
	require.NoError(t, err)

	// Plant an already-expired session row.
	var u gormRepo.UserModel
	require.NoError(t, db.First(&u, "username = ?", "bakery1").Error)
	require.NoError(t, db.Create(&gormRepo.SessionModel{
		UserID:    u.ID,
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}).Error)

	_, err = svc.Login(ctx, "bakery1", "password1234")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&gormRepo.SessionModel{}).
		Where("token = ?", "expired-token").
		Count(&count).Error)
	assert.Zero(t, count)
}

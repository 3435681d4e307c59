package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thewiseshop/pawtrait-backend/internal/config"
	"github.com/thewiseshop/pawtrait-backend/internal/dto"
	"github.com/thewiseshop/pawtrait-backend/internal/mailer"
	"github.com/thewiseshop/pawtrait-backend/internal/models"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
		AuthTimeout:      5 * time.Second,
		AdminEmails:      "admin@pawtrait.art",
	}
	return NewAuthService(db, cfg, mailer.New(cfg)), db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "User@Example.com",
		Password: "password123",
		Name:     "홍길동",
		Nickname: "길동이",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "user@example.com", resp.User.Email)
	assert.Equal(t, 0, resp.User.Credits)
	assert.False(t, resp.User.IsAdmin)

	login, err := svc.Login(&dto.LoginRequest{Email: "user@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(&dto.LoginRequest{Email: "user@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "dup@example.com", Password: "password123"})
	require.NoError(t, err)
	_, err = svc.Register(&dto.RegisterRequest{Email: "dup@example.com", Password: "password456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_AdminAllowList(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "admin@pawtrait.art", Password: "password123"})
	require.NoError(t, err)
	assert.True(t, resp.User.IsAdmin)
}

func TestRegister_AccessTokenClaims(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "claims@example.com", Password: "password123"})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, resp.User.ID.String(), claims["sub"])
	assert.Equal(t, "claims@example.com", claims["email"])
}

func TestRefresh_RotatesToken(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "rot@example.com", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, refreshed.RefreshToken)

	// The used token is revoked; replaying it fails.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "out@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSession(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "sess@example.com", Password: "password123"})
	require.NoError(t, err)

	profile, err := svc.Session(context.Background(), resp.User.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "sess@example.com", profile.Email)

	_, err = svc.Session(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRecover_DoesNotRevealAccounts(t *testing.T) {
	svc, db := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "rec@example.com", Password: "password123"})
	require.NoError(t, err)

	// Unknown address still reports success.
	require.NoError(t, svc.Recover(&dto.RecoverRequest{Email: "ghost@example.com"}))

	// Known address gets a new password hash even when mail delivery fails.
	var before models.Profile
	require.NoError(t, db.First(&before, "id = ?", resp.User.ID).Error)
	require.NoError(t, svc.Recover(&dto.RecoverRequest{Email: "rec@example.com"}))
	var after models.Profile
	require.NoError(t, db.First(&after, "id = ?", resp.User.ID).Error)
	assert.NotEqual(t, before.Password, after.Password)
}

func TestDeleteAccount(t *testing.T) {
	svc, db := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "bye@example.com", Password: "password123"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteAccount(resp.User.ID, "wrong"), ErrInvalidCredentials)
	require.NoError(t, svc.DeleteAccount(resp.User.ID, "password123"))

	var count int64
	db.Model(&models.RefreshToken{}).Where("user_id = ?", resp.User.ID).Count(&count)
	assert.Zero(t, count)
	_, err = svc.Login(&dto.LoginRequest{Email: "bye@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/auth"
)

func newJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "registrar-test",
	})
}

func seedUser(t *testing.T, users *fakeUserStore, email, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	u := &models.User{Name: "Admin User", Email: email, Password: hash}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestLogin(t *testing.T) {
	users, tokens := newFakeUserStore(), newFakeTokenStore()
	jwtService := newJWTService()
	svc := NewAuthService(users, tokens, jwtService)
	admin := seedUser(t, users, "admin@example.com", "admin")
	ctx := context.Background()

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, admin.ID, resp.User.ID)
	assert.Contains(t, tokens.tokens, resp.Token.RefreshToken)

	claims, err := jwtService.ValidateAndExtractClaims(resp.Token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "admin"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshTokenIsSingleUse(t *testing.T) {
	users, tokens := newFakeUserStore(), newFakeTokenStore()
	svc := NewAuthService(users, tokens, newJWTService())
	seedUser(t, users, "admin@example.com", "admin")
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "admin"})
	require.NoError(t, err)

	rotated, err := svc.RefreshToken(ctx, login.Token.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.Token.RefreshToken, rotated.Token.RefreshToken)

	_, err = svc.RefreshToken(ctx, login.Token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	_, err = svc.RefreshToken(ctx, "unknown")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)

	_, err = svc.RefreshToken(ctx, " ")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestRefreshTokenExpired(t *testing.T) {
	users, tokens := newFakeUserStore(), newFakeTokenStore()
	svc := NewAuthService(users, tokens, newJWTService())
	u := seedUser(t, users, "admin@example.com", "admin")
	require.NoError(t, tokens.CreateToken(context.Background(), "stale", u.ID, time.Now().Add(-time.Minute)))

	_, err := svc.RefreshToken(context.Background(), "stale")
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestLogoutRevokesTokens(t *testing.T) {
	users, tokens := newFakeUserStore(), newFakeTokenStore()
	svc := NewAuthService(users, tokens, newJWTService())
	u := seedUser(t, users, "admin@example.com", "admin")
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "admin"})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, u.ID))

	_, err = svc.RefreshToken(ctx, login.Token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

package auth

import (
	"testing"
	"time"

	"mesauth/config"
	"mesauth/internal/domain/entity"
	domainerrors "mesauth/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "jdoe",
		Role:     entity.RoleQA,
		Active:   true,
	}
}

func TestJWTService_GenerateAndValidateTokenPair(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	user := newTestUser()

	pair, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, uuid.Nil, pair.RefreshTokenID)

	// Access token round-trips the identity and role claims.
	accessClaims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, accessClaims.UserID)
	assert.Equal(t, user.Username, accessClaims.Username)
	assert.Equal(t, entity.RoleQA, accessClaims.Role)
	assert.Equal(t, "access", accessClaims.Type)

	// Refresh token carries the jti but no role.
	refreshClaims, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshClaims.UserID)
	assert.Equal(t, pair.RefreshTokenID.String(), refreshClaims.ID)
	assert.Empty(t, refreshClaims.Role)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	pair, err := svc.GenerateTokenPair(newTestUser())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	cfg := newTestTokenConfig()
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	clock := issued
	svc, err := newJWTServiceWithClock(cfg, func() time.Time { return clock })
	require.NoError(t, err)

	pair, err := svc.GenerateTokenPair(newTestUser())
	require.NoError(t, err)

	// One millisecond before expiry the token is still accepted.
	clock = issued.Add(cfg.Auth.AccessTokenTTL - time.Millisecond)
	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.NoError(t, err)

	// Exactly at the expiry instant it is rejected.
	clock = issued.Add(cfg.Auth.AccessTokenTTL)
	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))

	// And past expiry stays rejected.
	clock = issued.Add(cfg.Auth.AccessTokenTTL + time.Hour)
	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	otherCfg := newTestTokenConfig()
	otherCfg.SecretKey.Access = "a_completely_different_access_secret_key"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	pair, err := svc.GenerateTokenPair(newTestUser())
	require.NoError(t, err)

	_, err = otherSvc.ValidateAccessToken(pair.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := newTestTokenConfig()
	cfg.SecretKey.Access = ""
	cfg.SecretKey.Refresh = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

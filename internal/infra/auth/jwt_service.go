// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"mesauth/config"
	"mesauth/internal/domain/entity"
	domainerrors "mesauth/internal/domain/errors"
	"mesauth/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTServiceWithClock(cfg, time.Now)
}

// newJWTServiceWithClock allows tests to pin the clock for deterministic
// expiry behavior.
func newJWTServiceWithClock(cfg *config.Config, now func() time.Time) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
		now:           now,
	}, nil
}

// GenerateTokenPair mints an access token carrying the role claim and a
// refresh token carrying a fresh jti for rotation tracking.
func (s *jwtService) GenerateTokenPair(user *entity.User) (*service.TokenPair, error) {
	issuedAt := s.now()

	accessToken, err := s.signToken(&service.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Type:     tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.accessTTL)),
		},
	}, s.accessSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	refreshID := uuid.New()
	refreshExpiry := issuedAt.Add(s.refreshTTL)

	refreshToken, err := s.signToken(&service.Claims{
		UserID: user.ID,
		Type:   tokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ID:        refreshID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(refreshExpiry),
		},
	}, s.refreshSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign refresh token")
	}

	return &service.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshTokenID:   refreshID,
		RefreshExpiresAt: refreshExpiry,
	}, nil
}

// ValidateAccessToken checks signature, expiry, and token type of an access token.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.parseToken(tokenString, s.accessSecret, tokenTypeAccess)
}

// ValidateRefreshToken checks signature, expiry, and token type of a refresh token.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.parseToken(tokenString, s.refreshSecret, tokenTypeRefresh)
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) signToken(claims *service.Claims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secret)
}

// parseToken verifies signature and expiry, then pins the token type so an
// access token can never stand in for a refresh token or vice versa.
// A token presented exactly at its expiry instant is already expired.
func (s *jwtService) parseToken(tokenString string, secret []byte, wantType string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token past expiry")
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage("failed to parse token structure")
	}

	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token failed validation")
	}

	if claims.Type != wantType {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("unexpected token type")
	}

	return claims, nil
}

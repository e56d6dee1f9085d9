package service

import (
	"time"

	"mesauth/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by the service's JWTs.
type Claims struct {
	UserID   uuid.UUID
	Username string
	Role     entity.Role
	Type     string // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenPair bundles one issuance: the signed tokens plus the refresh token's
// identity, which the session ledger and blacklist key on.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	RefreshTokenID   uuid.UUID // jti of the refresh token.
	RefreshExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokenPair mints an access/refresh pair for a user. The access
	// token carries the role claim for stateless authorization; the refresh
	// token carries a unique jti for rotation tracking.
	GenerateTokenPair(user *entity.User) (*TokenPair, error)

	// ValidateAccessToken checks signature, expiry, and token type of an
	// access token. Validation is stateless: issued access tokens are never
	// individually revocable before expiry.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks signature, expiry, and token type of a
	// refresh token. Revocation is the blacklist's concern, not this one's.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}

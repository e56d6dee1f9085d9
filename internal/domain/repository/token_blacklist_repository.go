// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"mesauth/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTokenAlreadyRevoked is returned when a blacklist insert loses the race:
// the token's jti is already present. Exactly one of N concurrent rotations
// of the same token avoids this error.
var ErrTokenAlreadyRevoked = errors.New("refresh token already revoked")

// TokenBlacklistRepository maintains the ledger of retired refresh-token
// identifiers. Every refresh and logout consults it.
type TokenBlacklistRepository interface {
	// Revoke inserts a retirement record for a refresh token's jti.
	// Returns ErrTokenAlreadyRevoked if the jti is already blacklisted;
	// the uniqueness guarantee must hold under concurrent callers.
	Revoke(ctx context.Context, token *entity.RevokedToken) error

	// IsRevoked reports whether a jti is present in the blacklist.
	IsRevoked(ctx context.Context, tokenID uuid.UUID) (bool, error)

	// DeleteExpired prunes blacklist rows whose tokens have passed their own
	// expiry and can no longer be presented. Returns the number pruned.
	DeleteExpired(ctx context.Context) (int, error)
}

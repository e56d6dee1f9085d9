// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the durable record of one authenticated client context. It is
// created on login, follows its refresh token through rotations, and ends
// exactly once, on logout, explicit termination, or token revocation.
type Session struct {
	ID           uuid.UUID  // The unique ID for this session record.
	UserID       uuid.UUID  // Links this session to the User it belongs to.
	TokenID      uuid.UUID  // The jti of the session's current refresh token.
	IPAddress    string     // Client IP address captured at login.
	UserAgent    string     // Client user-agent string captured at login.
	Active       bool       // False once the session has ended. Never flips back.
	CreatedAt    time.Time  // When the session started (login time).
	LastActiveAt time.Time  // Bumped on every token refresh.
	EndedAt      *time.Time // When the session ended, nil while active.
}

// RevokedToken is one entry of the refresh-token blacklist. Its primary key
// on TokenID is the mutual-exclusion point for rotation: of N concurrent
// refreshes presenting the same token, exactly one insert succeeds.
type RevokedToken struct {
	TokenID   uuid.UUID // The jti claim of the retired refresh token.
	UserID    uuid.UUID // The user the token was issued to.
	ExpiresAt time.Time // Original token expiry, kept so cleanup can prune the row.
	RevokedAt time.Time // When the token was blacklisted.
}

// ClientMeta carries per-request client metadata into the core for session
// bookkeeping and logging. The delivery layer fills it in.
type ClientMeta struct {
	IPAddress string
	UserAgent string
}

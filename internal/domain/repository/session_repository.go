// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"mesauth/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session does not exist or does not
// belong to the requesting user. The two cases are indistinguishable on
// purpose, so callers cannot probe other users' sessions.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the operations of the session ledger: the durable
// record of authentication events that backs session visibility and
// termination APIs.
type SessionRepository interface {
	// Create inserts a new active session row for a login event.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// FindByTokenID retrieves the session whose current refresh token carries
	// the given jti.
	FindByTokenID(ctx context.Context, tokenID uuid.UUID) (*entity.Session, error)

	// ListByUser retrieves sessions for a user, most recent first. Only the
	// owning user's sessions are ever returned.
	ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Session, error)

	// Rotate moves a session onto a freshly minted refresh token, records the
	// rotating client's network identity, and bumps the last-active timestamp.
	Rotate(ctx context.Context, sessionID, newTokenID uuid.UUID, meta entity.ClientMeta, at time.Time) error

	// End flips a session's active flag to false and records the end time.
	// A session that has already ended stays ended; End is idempotent.
	End(ctx context.Context, sessionID uuid.UUID, at time.Time) error

	// EndAllByUser ends every active session of a user. Returns the number of
	// sessions ended.
	EndAllByUser(ctx context.Context, userID uuid.UUID, at time.Time) (int, error)

	// EndExpired ends active sessions whose last activity predates the cutoff,
	// i.e. whose refresh token can no longer be valid. Returns the number of
	// sessions ended.
	EndExpired(ctx context.Context, cutoff time.Time, at time.Time) (int, error)
}

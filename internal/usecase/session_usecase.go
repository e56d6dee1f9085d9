package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionInfo is the caller-facing view of one session. Token identifiers
// never leave the core, so the view carries only descriptive metadata.
type SessionInfo struct {
	ID           uuid.UUID
	IPAddress    string
	UserAgent    string
	Active       bool
	CreatedAt    time.Time
	LastActiveAt time.Time
	EndedAt      *time.Time
}

// SessionUsecase defines the interface for session management operations.
// Every operation is scoped to the requesting user; no call can observe or
// affect another user's sessions.
type SessionUsecase interface {
	// ListSessions returns the user's sessions, most recent first.
	ListSessions(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*SessionInfo, error)

	// TerminateSession ends one of the user's sessions and retires its
	// refresh token. A session that does not exist and a session owned by
	// someone else produce the same not-found answer.
	TerminateSession(ctx context.Context, userID, sessionID uuid.UUID) error

	// TerminateAllSessions ends every active session of the user. Returns the
	// number of sessions ended.
	TerminateAllSessions(ctx context.Context, userID uuid.UUID) (int, error)

	// CleanupExpired prunes blacklist rows for tokens that have aged out and
	// ends sessions whose refresh tokens can no longer be presented. Returns
	// counts of pruned tokens and ended sessions.
	CleanupExpired(ctx context.Context) (int, int, error)
}

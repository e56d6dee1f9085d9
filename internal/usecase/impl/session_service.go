package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mesauth/internal/delivery/context"
	"mesauth/internal/domain/entity"
	domainerrors "mesauth/internal/domain/errors"
	"mesauth/internal/domain/repository"
	"mesauth/internal/domain/service"
	"mesauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	txManager repository.TransactionManager,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		txManager:    txManager,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSessions returns the user's sessions, most recent first. The query is
// keyed on the user ID, so nothing from another account can appear here.
func (srv *sessionService) ListSessions(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*usecase.SessionInfo, error) {
	srv.log(ctx).Debug("Listing sessions", slog.Any("userID", userID), slog.Bool("activeOnly", activeOnly))

	var infos []*usecase.SessionInfo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessions, err := repoFactory.SessionRepo().ListByUser(ctx, userID, activeOnly)
		if err != nil {
			return errors.Wrap(err, "failed to list sessions")
		}

		infos = make([]*usecase.SessionInfo, 0, len(sessions))
		for _, session := range sessions {
			infos = append(infos, toSessionInfo(session))
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list sessions", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return infos, nil
}

// TerminateSession ends one of the user's sessions and retires its refresh
// token. A missing session and someone else's session get the same answer,
// so session IDs cannot be probed across accounts.
func (srv *sessionService) TerminateSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	srv.log(ctx).Info("Terminating session", slog.Any("userID", userID), slog.Any("sessionID", sessionID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		session, err := sessionRepo.FindByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}

		// Ownership check collapses into the same not-found answer.
		if session.UserID != userID {
			return domainerrors.ErrNotFound.WrapMessage("session not found")
		}

		now := time.Now()
		if session.Active {
			revoked := &entity.RevokedToken{
				TokenID:   session.TokenID,
				UserID:    userID,
				ExpiresAt: now.Add(srv.tokenService.RefreshTokenDuration()),
				RevokedAt: now,
			}
			if err := repoFactory.BlacklistRepo().Revoke(ctx, revoked); err != nil && !errors.Is(err, repository.ErrTokenAlreadyRevoked) {
				return errors.WithStack(err)
			}
		}

		return errors.Wrap(sessionRepo.End(ctx, session.ID, now), "failed to end session")
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to terminate session", slog.Any("error", err), slog.Any("sessionID", sessionID))

		return errors.Wrap(err, "failed to execute session termination transaction")
	}
	srv.log(ctx).Info("Session terminated", slog.Any("userID", userID), slog.Any("sessionID", sessionID))

	return nil
}

// TerminateAllSessions ends every active session of the user, retiring each
// session's refresh token along the way.
func (srv *sessionService) TerminateAllSessions(ctx context.Context, userID uuid.UUID) (int, error) {
	srv.log(ctx).Info("Terminating all sessions", slog.Any("userID", userID))

	var ended int

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()
		blacklistRepo := repoFactory.BlacklistRepo()

		sessions, err := sessionRepo.ListByUser(ctx, userID, true)
		if err != nil {
			return errors.Wrap(err, "failed to list active sessions")
		}

		now := time.Now()
		expiry := now.Add(srv.tokenService.RefreshTokenDuration())
		for _, session := range sessions {
			revoked := &entity.RevokedToken{
				TokenID:   session.TokenID,
				UserID:    userID,
				ExpiresAt: expiry,
				RevokedAt: now,
			}
			if err := blacklistRepo.Revoke(ctx, revoked); err != nil && !errors.Is(err, repository.ErrTokenAlreadyRevoked) {
				return errors.WithStack(err)
			}
		}

		ended, err = sessionRepo.EndAllByUser(ctx, userID, now)

		return errors.Wrap(err, "failed to end sessions")
	})

	if err != nil {
		srv.log(ctx).Error("Failed to terminate all sessions", slog.Any("error", err), slog.Any("userID", userID))

		return 0, errors.Wrap(err, "failed to execute session termination transaction")
	}
	srv.log(ctx).Info("All sessions terminated", slog.Any("userID", userID), slog.Int("count", ended))

	return ended, nil
}

// CleanupExpired is the maintenance path: blacklist rows whose tokens have
// aged out are deleted, and sessions that have been idle past the refresh
// lifetime are ended. Safe to run on any schedule.
func (srv *sessionService) CleanupExpired(ctx context.Context) (int, int, error) {
	srv.log(ctx).Debug("Cleaning up expired tokens and sessions")

	var prunedTokens, endedSessions int

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pruned, err := repoFactory.BlacklistRepo().DeleteExpired(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to prune expired revoked tokens")
		}
		prunedTokens = pruned

		now := time.Now()
		cutoff := now.Add(-srv.tokenService.RefreshTokenDuration())
		ended, err := repoFactory.SessionRepo().EndExpired(ctx, cutoff, now)
		if err != nil {
			return errors.Wrap(err, "failed to end expired sessions")
		}
		endedSessions = ended

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Cleanup failed", slog.Any("error", err))

		return 0, 0, errors.Wrap(err, "failed to execute cleanup transaction")
	}
	srv.log(ctx).Info("Cleanup finished", slog.Int("prunedTokens", prunedTokens), slog.Int("endedSessions", endedSessions))

	return prunedTokens, endedSessions, nil
}

// toSessionInfo converts a session entity to its caller-facing view. The
// refresh token's jti never leaves the core.
func toSessionInfo(session *entity.Session) *usecase.SessionInfo {
	return &usecase.SessionInfo{
		ID:           session.ID,
		IPAddress:    session.IPAddress,
		UserAgent:    session.UserAgent,
		Active:       session.Active,
		CreatedAt:    session.CreatedAt,
		LastActiveAt: session.LastActiveAt,
		EndedAt:      session.EndedAt,
	}
}

package impl

import (
	"context"
	"testing"
	"time"

	"mesauth/internal/domain/entity"
	domainerrors "mesauth/internal/domain/errors"
	"mesauth/internal/domain/repository"
	mockRepo "mesauth/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_ListSessions(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	sessions := []*entity.Session{
		{
			ID:           uuid.New(),
			UserID:       userID,
			TokenID:      uuid.New(),
			IPAddress:    "10.1.2.3",
			UserAgent:    "shopfloor-terminal",
			Active:       true,
			CreatedAt:    now.Add(-time.Hour),
			LastActiveAt: now,
		},
		{
			ID:           uuid.New(),
			UserID:       userID,
			TokenID:      uuid.New(),
			IPAddress:    "10.1.2.4",
			Active:       true,
			CreatedAt:    now.Add(-2 * time.Hour),
			LastActiveAt: now.Add(-time.Hour),
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)
		mockSessionRepo.EXPECT().ListByUser(ctx, userID, true).Return(sessions, nil)
	})

	infos, err := fx.service.ListSessions(ctx, userID, true)

	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, sessions[0].ID, infos[0].ID)
	assert.Equal(t, "10.1.2.3", infos[0].IPAddress)
	assert.Equal(t, "shopfloor-terminal", infos[0].UserAgent)
	assert.True(t, infos[0].Active)
}

func TestSessionService_ListSessions_Empty(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)
		mockSessionRepo.EXPECT().ListByUser(ctx, userID, false).Return(nil, nil)
	})

	infos, err := fx.service.ListSessions(ctx, userID, false)

	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestSessionService_TerminateSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	tokenID := uuid.New()
	session := &entity.Session{ID: sessionID, UserID: userID, TokenID: tokenID, Active: true}

	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		mockBlacklistRepo := mockRepo.NewMockTokenBlacklistRepository(t)

		factory.EXPECT().SessionRepo().Return(mockSessionRepo)
		factory.EXPECT().BlacklistRepo().Return(mockBlacklistRepo)

		mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)
		mockBlacklistRepo.EXPECT().
			Revoke(ctx, mock.AnythingOfType("*entity.RevokedToken")).
			Run(func(ctx context.Context, token *entity.RevokedToken) {
				assert.Equal(t, tokenID, token.TokenID)
				assert.Equal(t, userID, token.UserID)
			}).
			Return(nil)
		mockSessionRepo.EXPECT().End(ctx, sessionID, mock.AnythingOfType("time.Time")).Return(nil)
	})

	err := fx.service.TerminateSession(ctx, userID, sessionID)

	require.NoError(t, err)
}

func TestSessionService_TerminateSession_OtherUsersSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	callerID := uuid.New()
	sessionID := uuid.New()
	session := &entity.Session{ID: sessionID, UserID: ownerID, TokenID: uuid.New(), Active: true}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)
		mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)
	})

	err := fx.service.TerminateSession(ctx, callerID, sessionID)

	// Indistinguishable from a session that does not exist.
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestSessionService_TerminateSession_NotFound(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)
		mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(nil, repository.ErrSessionNotFound)
	})

	err := fx.service.TerminateSession(ctx, userID, sessionID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestSessionService_TerminateSession_AlreadyEnded(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	endedAt := time.Now().Add(-time.Hour)
	session := &entity.Session{ID: sessionID, UserID: userID, TokenID: uuid.New(), Active: false, EndedAt: &endedAt}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)
		// No revocation for a session that is already inactive.
		mockSessionRepo.EXPECT().End(ctx, sessionID, mock.AnythingOfType("time.Time")).Return(nil)
	})

	err := fx.service.TerminateSession(ctx, userID, sessionID)

	require.NoError(t, err)
}

func TestSessionService_TerminateAllSessions(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessions := []*entity.Session{
		{ID: uuid.New(), UserID: userID, TokenID: uuid.New(), Active: true},
		{ID: uuid.New(), UserID: userID, TokenID: uuid.New(), Active: true},
		{ID: uuid.New(), UserID: userID, TokenID: uuid.New(), Active: true},
	}

	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		mockBlacklistRepo := mockRepo.NewMockTokenBlacklistRepository(t)

		factory.EXPECT().SessionRepo().Return(mockSessionRepo)
		factory.EXPECT().BlacklistRepo().Return(mockBlacklistRepo)

		mockSessionRepo.EXPECT().ListByUser(ctx, userID, true).Return(sessions, nil)
		mockBlacklistRepo.EXPECT().
			Revoke(ctx, mock.AnythingOfType("*entity.RevokedToken")).
			Return(nil).
			Times(3)
		mockSessionRepo.EXPECT().
			EndAllByUser(ctx, userID, mock.AnythingOfType("time.Time")).
			Return(3, nil)
	})

	ended, err := fx.service.TerminateAllSessions(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 3, ended)
}

func TestSessionService_TerminateAllSessions_ToleratesRevokedTokens(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessions := []*entity.Session{
		{ID: uuid.New(), UserID: userID, TokenID: uuid.New(), Active: true},
	}

	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		mockBlacklistRepo := mockRepo.NewMockTokenBlacklistRepository(t)

		factory.EXPECT().SessionRepo().Return(mockSessionRepo)
		factory.EXPECT().BlacklistRepo().Return(mockBlacklistRepo)

		mockSessionRepo.EXPECT().ListByUser(ctx, userID, true).Return(sessions, nil)
		mockBlacklistRepo.EXPECT().
			Revoke(ctx, mock.AnythingOfType("*entity.RevokedToken")).
			Return(repository.ErrTokenAlreadyRevoked)
		mockSessionRepo.EXPECT().
			EndAllByUser(ctx, userID, mock.AnythingOfType("time.Time")).
			Return(1, nil)
	})

	ended, err := fx.service.TerminateAllSessions(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 1, ended)
}

func TestSessionService_CleanupExpired(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		mockBlacklistRepo := mockRepo.NewMockTokenBlacklistRepository(t)

		factory.EXPECT().SessionRepo().Return(mockSessionRepo)
		factory.EXPECT().BlacklistRepo().Return(mockBlacklistRepo)

		mockBlacklistRepo.EXPECT().DeleteExpired(ctx).Return(12, nil)
		mockSessionRepo.EXPECT().
			EndExpired(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			RunAndReturn(func(ctx context.Context, cutoff time.Time, at time.Time) (int, error) {
				assert.WithinDuration(t, time.Now().Add(-7*24*time.Hour), cutoff, time.Minute)

				return 4, nil
			})
	})

	prunedTokens, endedSessions, err := fx.service.CleanupExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, 12, prunedTokens)
	assert.Equal(t, 4, endedSessions)
}

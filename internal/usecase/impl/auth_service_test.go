package impl

import (
	"context"
	"testing"
	"time"

	"mesauth/internal/domain/entity"
	domainerrors "mesauth/internal/domain/errors"
	"mesauth/internal/domain/repository"
	"mesauth/internal/domain/service"
	mockRepo "mesauth/internal/mocks/repository"
	"mesauth/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func usecaseLoginInput(username, password, ip, userAgent string) *usecase.LoginInput {
	return &usecase.LoginInput{
		Username: username,
		Password: password,
		Meta:     entity.ClientMeta{IPAddress: ip, UserAgent: userAgent},
	}
}

func usecaseRefreshInput(token, ip, userAgent string) *usecase.RefreshInput {
	return &usecase.RefreshInput{
		RefreshToken: token,
		Meta:         entity.ClientMeta{IPAddress: ip, UserAgent: userAgent},
	}
}

func usecaseLogoutInput(token string) *usecase.LogoutInput {
	return &usecase.LogoutInput{RefreshToken: token}
}

func refreshClaims(userID, tokenID uuid.UUID, expiresAt time.Time) *service.Claims {
	return &service.Claims{
		UserID: userID,
		Type:   "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        tokenID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Username:     "chen.wei",
		Role:         entity.RoleOperator,
		PasswordHash: "$2a$12$stored",
		Active:       true,
	}
	pair := &service.TokenPair{
		AccessToken:      "access-token",
		RefreshToken:     "refresh-token",
		RefreshTokenID:   uuid.New(),
		RefreshExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}

	fx.hasher.EXPECT().Check("secret", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateTokenPair(user).Return(pair, nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockUserRepo.EXPECT().FindByUsername(ctx, "chen.wei").Return(user, nil)
		mockUserRepo.EXPECT().RecordLoginSuccess(ctx, userID, "10.1.2.3").Return(nil)
		mockSessionRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Session")).
			Run(func(ctx context.Context, session *entity.Session) {
				assert.Equal(t, userID, session.UserID)
				assert.Equal(t, pair.RefreshTokenID, session.TokenID)
				assert.Equal(t, "10.1.2.3", session.IPAddress)
				assert.True(t, session.Active)
			}).
			Return(nil)
	})

	output, err := fx.service.Login(ctx, usecaseLoginInput("chen.wei", "secret", "10.1.2.3", "test-agent"))

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, "10.1.2.3", output.User.LastLoginIP)
	assert.Zero(t, output.User.FailedLoginAttempts)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	// The dummy comparison keeps unknown-user timing in line with a real check.
	fx.hasher.EXPECT().Check("secret", dummyPasswordHash).Return(false)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	})

	output, err := fx.service.Login(ctx, usecaseLoginInput("ghost", "secret", "10.1.2.3", ""))

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "chen.wei", PasswordHash: "$2a$12$stored", Active: true}

	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByUsername(ctx, "chen.wei").Return(user, nil)
		mockUserRepo.EXPECT().RecordLoginFailure(ctx, userID).Return(nil)
	})

	output, err := fx.service.Login(ctx, usecaseLoginInput("chen.wei", "wrong", "10.1.2.3", ""))

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "chen.wei", PasswordHash: "$2a$12$stored", Active: false}

	fx.hasher.EXPECT().Check("secret", user.PasswordHash).Return(true)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByUsername(ctx, "chen.wei").Return(user, nil)
	})

	output, err := fx.service.Login(ctx, usecaseLoginInput("chen.wei", "secret", "10.1.2.3", ""))

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	oldTokenID := uuid.New()
	sessionID := uuid.New()
	user := &entity.User{ID: userID, Username: "chen.wei", Role: entity.RoleQA, Active: true}
	session := &entity.Session{ID: sessionID, UserID: userID, TokenID: oldTokenID, Active: true}
	newPair := &service.TokenPair{
		AccessToken:    "new-access",
		RefreshToken:   "new-refresh",
		RefreshTokenID: uuid.New(),
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(refreshClaims(userID, oldTokenID, time.Now().Add(time.Hour)), nil)
	fx.tokenService.EXPECT().GenerateTokenPair(user).Return(newPair, nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		mockBlacklistRepo := mockRepo.NewMockTokenBlacklistRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)
		factory.EXPECT().BlacklistRepo().Return(mockBlacklistRepo)

		mockBlacklistRepo.EXPECT().IsRevoked(ctx, oldTokenID).Return(false, nil)
		mockBlacklistRepo.EXPECT().
			Revoke(ctx, mock.AnythingOfType("*entity.RevokedToken")).
			Run(func(ctx context.Context, token *entity.RevokedToken) {
				assert.Equal(t, oldTokenID, token.TokenID)
				assert.Equal(t, userID, token.UserID)
			}).
			Return(nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockSessionRepo.EXPECT().FindByTokenID(ctx, oldTokenID).Return(session, nil)
		mockSessionRepo.EXPECT().
			Rotate(ctx, sessionID, newPair.RefreshTokenID,
				entity.ClientMeta{IPAddress: "10.9.8.7", UserAgent: "fresh-agent"},
				mock.AnythingOfType("time.Time")).
			Return(nil)
	})

	output, err := fx.service.Refresh(ctx, usecaseRefreshInput("old-refresh", "10.9.8.7", "fresh-agent"))

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_Refresh_AlreadyRotated(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("stale-refresh").
		Return(refreshClaims(userID, tokenID, time.Now().Add(time.Hour)), nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBlacklistRepo := mockRepo.NewMockTokenBlacklistRepository(t)
		factory.EXPECT().BlacklistRepo().Return(mockBlacklistRepo)
		// The blacklist lookup ran before the concurrent rotation landed, so
		// it is the insert that reports the lost race.
		mockBlacklistRepo.EXPECT().IsRevoked(ctx, tokenID).Return(false, nil)
		mockBlacklistRepo.EXPECT().
			Revoke(ctx, mock.AnythingOfType("*entity.RevokedToken")).
			Return(repository.ErrTokenAlreadyRevoked)
	})

	output, err := fx.service.Refresh(ctx, usecaseRefreshInput("stale-refresh", "10.1.2.3", ""))

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenRevoked))
}

func TestAuthService_Refresh_ReplayedToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("replayed-refresh").
		Return(refreshClaims(userID, tokenID, time.Now().Add(time.Hour)), nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBlacklistRepo := mockRepo.NewMockTokenBlacklistRepository(t)
		factory.EXPECT().BlacklistRepo().Return(mockBlacklistRepo)
		// A long-retired token is answered by the lookup alone; no insert,
		// no replacement pair.
		mockBlacklistRepo.EXPECT().IsRevoked(ctx, tokenID).Return(true, nil)
	})

	output, err := fx.service.Refresh(ctx, usecaseRefreshInput("replayed-refresh", "10.1.2.3", ""))

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenRevoked))
}

func TestAuthService_Refresh_ExpiredToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("expired-refresh").
		Return(nil, domainerrors.ErrTokenExpired.WrapMessage("token past expiry"))

	output, err := fx.service.Refresh(ctx, usecaseRefreshInput("expired-refresh", "10.1.2.3", ""))

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestAuthService_Refresh_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.New()
	user := &entity.User{ID: userID, Active: false}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh").
		Return(refreshClaims(userID, tokenID, time.Now().Add(time.Hour)), nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockBlacklistRepo := mockRepo.NewMockTokenBlacklistRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().BlacklistRepo().Return(mockBlacklistRepo)

		mockBlacklistRepo.EXPECT().IsRevoked(ctx, tokenID).Return(false, nil)
		mockBlacklistRepo.EXPECT().Revoke(ctx, mock.AnythingOfType("*entity.RevokedToken")).Return(nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	output, err := fx.service.Refresh(ctx, usecaseRefreshInput("refresh", "10.1.2.3", ""))

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.New()
	sessionID := uuid.New()
	session := &entity.Session{ID: sessionID, UserID: userID, TokenID: tokenID, Active: true}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh").
		Return(refreshClaims(userID, tokenID, time.Now().Add(time.Hour)), nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		mockBlacklistRepo := mockRepo.NewMockTokenBlacklistRepository(t)

		factory.EXPECT().SessionRepo().Return(mockSessionRepo)
		factory.EXPECT().BlacklistRepo().Return(mockBlacklistRepo)

		mockBlacklistRepo.EXPECT().Revoke(ctx, mock.AnythingOfType("*entity.RevokedToken")).Return(nil)
		mockSessionRepo.EXPECT().FindByTokenID(ctx, tokenID).Return(session, nil)
		mockSessionRepo.EXPECT().End(ctx, sessionID, mock.AnythingOfType("time.Time")).Return(nil)
	})

	err := fx.service.Logout(ctx, usecaseLogoutInput("refresh"))

	require.NoError(t, err)
}

func TestAuthService_Logout_RepeatedIsNoop(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh").
		Return(refreshClaims(userID, tokenID, time.Now().Add(time.Hour)), nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBlacklistRepo := mockRepo.NewMockTokenBlacklistRepository(t)
		factory.EXPECT().BlacklistRepo().Return(mockBlacklistRepo)
		mockBlacklistRepo.EXPECT().
			Revoke(ctx, mock.AnythingOfType("*entity.RevokedToken")).
			Return(repository.ErrTokenAlreadyRevoked)
	})

	err := fx.service.Logout(ctx, usecaseLogoutInput("refresh"))

	require.NoError(t, err)
}

func TestAuthService_Logout_UnusableTokenIsNoop(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("failed to parse token structure"))

	err := fx.service.Logout(ctx, usecaseLogoutInput("garbage"))

	require.NoError(t, err)
}

func TestAuthService_Authenticate(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Username: "chen.wei", Role: entity.RoleAdmin, Type: "access"}

	fx.tokenService.EXPECT().ValidateAccessToken("access").Return(claims, nil)

	got, err := fx.service.Authenticate(ctx, "access")

	require.NoError(t, err)
	assert.Equal(t, claims, got)
}

func TestAuthService_Authenticate_Rejected(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateAccessToken("expired").
		Return(nil, domainerrors.ErrTokenExpired.WrapMessage("token past expiry"))

	got, err := fx.service.Authenticate(ctx, "expired")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

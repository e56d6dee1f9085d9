package impl

import (
	"context"
	"testing"
	"time"

	"mesauth/internal/domain/entity"
	domainerrors "mesauth/internal/domain/errors"
	"mesauth/internal/domain/repository"
	mockRepo "mesauth/internal/mocks/repository"
	"mesauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "chen.wei", Role: entity.RoleQA}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	got, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	got, err := fx.service.GetProfile(ctx, userID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileService_UpdateProfile_PartialFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:         userID,
		Username:   "chen.wei",
		Email:      "old@plant.example",
		FirstName:  "Wei",
		Department: "QA",
	}
	input := &usecase.UpdateProfileInput{
		Email: strPtr("new@plant.example"),
		Phone: strPtr("0912-345-678"),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockUserRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, updated *entity.User) {
				assert.Equal(t, "new@plant.example", updated.Email)
				assert.Equal(t, "0912-345-678", updated.Phone)
				// Untouched fields survive the partial update.
				assert.Equal(t, "Wei", updated.FirstName)
				assert.Equal(t, "QA", updated.Department)
			}).
			Return(nil)
	})

	got, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "new@plant.example", got.Email)
	assert.Equal(t, "Wei", got.FirstName)
}

func TestProfileService_ChangePassword_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "chen.wei", PasswordHash: "$2a$12$old"}

	fx.hasher.EXPECT().Check("Current#1", "$2a$12$old").Return(true)
	fx.hasher.EXPECT().ValidatePasswordStrength("Fresh#Pass9").Return(nil)
	fx.hasher.EXPECT().Check("Fresh#Pass9", "$2a$12$old").Return(false)
	fx.hasher.EXPECT().Hash("Fresh#Pass9").Return("$2a$12$new", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockUserRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, updated *entity.User) {
				assert.Equal(t, "$2a$12$new", updated.PasswordHash)
			}).
			Return(nil)
	})

	err := fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: "Current#1",
		NewPassword:     "Fresh#Pass9",
	})

	require.NoError(t, err)
}

func TestProfileService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "$2a$12$old"}

	fx.hasher.EXPECT().Check("wrong", "$2a$12$old").Return(false)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	err := fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "Fresh#Pass9",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestProfileService_ChangePassword_WeakReplacement(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "$2a$12$old"}

	fx.hasher.EXPECT().Check("Current#1", "$2a$12$old").Return(true)
	fx.hasher.EXPECT().
		ValidatePasswordStrength("short").
		Return(domainerrors.ErrPasswordTooWeak.WrapMessage("password must be at least 8 characters"))

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	err := fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: "Current#1",
		NewPassword:     "short",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooWeak))
}

func TestProfileService_ChangePassword_SameAsCurrent(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "$2a$12$old"}

	fx.hasher.EXPECT().Check("Current#1", "$2a$12$old").Return(true).Once()
	fx.hasher.EXPECT().ValidatePasswordStrength("Current#1").Return(nil)
	fx.hasher.EXPECT().Check("Current#1", "$2a$12$old").Return(true).Once()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	err := fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: "Current#1",
		NewPassword:     "Current#1",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMatchesOld))
}

func TestProfileService_CreateUser_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Username:   "lin.mei",
		Password:   "Fresh#Pass9",
		Email:      "lin.mei@plant.example",
		FirstName:  "Mei",
		LastName:   "Lin",
		Role:       "qa",
		EmployeeID: "EMP-0042",
		Department: "Quality",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("Fresh#Pass9").Return(nil)
	fx.hasher.EXPECT().Hash("Fresh#Pass9").Return("$2a$12$hashed", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, created *entity.User) {
				assert.Equal(t, "lin.mei", created.Username)
				assert.Equal(t, entity.RoleQA, created.Role)
				assert.Equal(t, "$2a$12$hashed", created.PasswordHash)
				assert.True(t, created.Active)
			}).
			Return(nil)
	})

	got, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "lin.mei", got.Username)
	assert.Equal(t, entity.RoleQA, got.Role)
}

func TestProfileService_CreateUser_InvalidRole(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	got, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "lin.mei",
		Password: "Fresh#Pass9",
		Role:     "superuser",
	})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
}

func TestProfileService_CreateUser_WeakPassword(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		ValidatePasswordStrength("123").
		Return(domainerrors.ErrPasswordTooWeak.WrapMessage("password must be at least 8 characters"))

	got, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "lin.mei",
		Password: "123",
		Role:     "operator",
	})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooWeak))
}

func TestProfileService_CreateUser_DuplicateUsername(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("Fresh#Pass9").Return(nil)
	fx.hasher.EXPECT().Hash("Fresh#Pass9").Return("$2a$12$hashed", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Return(domainerrors.ErrUserAlreadyExists)
	})

	got, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "chen.wei",
		Password: "Fresh#Pass9",
		Role:     "operator",
	})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestProfileService_DeactivateUser(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	adminID := uuid.New()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "chen.wei", Active: true}
	sessions := []*entity.Session{
		{ID: uuid.New(), UserID: userID, TokenID: uuid.New(), Active: true},
		{ID: uuid.New(), UserID: userID, TokenID: uuid.New(), Active: true},
	}

	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		mockBlacklistRepo := mockRepo.NewMockTokenBlacklistRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)
		factory.EXPECT().BlacklistRepo().Return(mockBlacklistRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockUserRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, updated *entity.User) {
				assert.False(t, updated.Active)
			}).
			Return(nil)
		mockSessionRepo.EXPECT().ListByUser(ctx, userID, true).Return(sessions, nil)

		revokedIDs := make(map[uuid.UUID]bool)
		mockBlacklistRepo.EXPECT().
			Revoke(ctx, mock.AnythingOfType("*entity.RevokedToken")).
			Run(func(ctx context.Context, token *entity.RevokedToken) {
				revokedIDs[token.TokenID] = true
			}).
			Return(nil).
			Times(2)
		mockSessionRepo.EXPECT().
			EndAllByUser(ctx, userID, mock.AnythingOfType("time.Time")).
			RunAndReturn(func(ctx context.Context, id uuid.UUID, at time.Time) (int, error) {
				// Both live tokens must be retired before the sessions end.
				assert.True(t, revokedIDs[sessions[0].TokenID])
				assert.True(t, revokedIDs[sessions[1].TokenID])

				return len(sessions), nil
			})
	})

	err := fx.service.DeactivateUser(ctx, adminID, userID)

	require.NoError(t, err)
}

func TestProfileService_DeactivateUser_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	adminID := uuid.New()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		mockBlacklistRepo := mockRepo.NewMockTokenBlacklistRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)
		factory.EXPECT().BlacklistRepo().Return(mockBlacklistRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	err := fx.service.DeactivateUser(ctx, adminID, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

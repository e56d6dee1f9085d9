package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mesauth/internal/domain/repository"
	mockRepo "mesauth/internal/mocks/repository"
	mockService "mesauth/internal/mocks/service"
	"mesauth/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	t            *testing.T
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	service := NewAuthService(txManager, hasher, tokenService, newDiscardLogger())

	return authServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// onExecute wires the transaction manager mock so the callback runs against a
// factory prepared by setup, and the callback's own error is what Execute
// reports back.
func (fx authServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	t            *testing.T
	service      usecase.ProfileUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	service := NewProfileService(txManager, hasher, tokenService, newDiscardLogger())

	return profileServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func (fx profileServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	t            *testing.T
	service      usecase.SessionUsecase
	txManager    *mockRepo.MockTransactionManager
	tokenService *mockService.MockTokenService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokenService := mockService.NewMockTokenService(t)
	service := NewSessionService(txManager, tokenService, newDiscardLogger())

	return sessionServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		tokenService: tokenService,
	}
}

func (fx sessionServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

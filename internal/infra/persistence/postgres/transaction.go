// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"time"

	"mesauth/config"
	domainerrors "mesauth/internal/domain/errors"
	"mesauth/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// fallbackQueryTimeout is only used when no auth configuration is present,
// e.g. in tests that construct the manager directly.
const fallbackQueryTimeout = 5 * time.Second

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// UserRepo returns a user repository instance bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// SessionRepo returns a session repository instance bound to the transaction.
func (f *gormRepositoryFactory) SessionRepo() repository.SessionRepository {
	return NewSessionRepository(f.tx)
}

// BlacklistRepo returns a token blacklist repository instance bound to the transaction.
func (f *gormRepositoryFactory) BlacklistRepo() repository.TokenBlacklistRepository {
	return NewTokenBlacklistRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	queryTimeout := fallbackQueryTimeout
	if cfg != nil && cfg.Auth != nil && cfg.Auth.QueryTimeout > 0 {
		queryTimeout = cfg.Auth.QueryTimeout
	}

	return &gormTransactionManager{db: db, queryTimeout: queryTimeout}
}

// Execute runs the given function within a single database transaction,
// bounded by the configured query timeout. A timed-out or unreachable store
// surfaces as ErrStoreUnavailable so callers can distinguish transient
// failures from business errors.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	ctx, cancel := context.WithTimeout(ctx, tm.queryTimeout)
	defer cancel()

	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domainerrors.ErrStoreUnavailable.WrapMessage(fmt.Sprintf("failed to begin transaction: %v", tx.Error))
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back. This is a critical safety measure.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	// Execute the application logic (the use case's core work)
	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Log the rollback error, but return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		if errors.Is(err, context.DeadlineExceeded) {
			return domainerrors.ErrStoreUnavailable.WrapMessage("transaction deadline exceeded")
		}

		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domainerrors.ErrStoreUnavailable.WrapMessage("transaction deadline exceeded")
		}

		return domainerrors.ErrStoreUnavailable.WrapMessage(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return nil
}

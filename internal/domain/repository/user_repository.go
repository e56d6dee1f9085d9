// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mesauth/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their login username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity to the storage. The role must be a
	// valid enumeration value; the implementation rejects anything else.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// RecordLoginSuccess resets the failed-attempt counter and stores the
	// client IP of the successful login.
	RecordLoginSuccess(ctx context.Context, id uuid.UUID, ip string) error

	// RecordLoginFailure increments the failed-attempt counter.
	RecordLoginFailure(ctx context.Context, id uuid.UUID) error

	// Note: there is deliberately no Delete. Accounts are soft-deactivated
	// via the Active flag to preserve referential integrity with sessions.
}

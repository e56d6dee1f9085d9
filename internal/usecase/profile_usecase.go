package usecase

import (
	"context"

	"mesauth/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateProfileInput carries the mutable profile fields. Nil pointers mean
// "leave unchanged"; role, username, and active status are not updatable here.
type UpdateProfileInput struct {
	Email      *string `validate:"omitempty,email"`
	FirstName  *string `validate:"omitempty,max=100"`
	LastName   *string `validate:"omitempty,max=100"`
	Department *string `validate:"omitempty,max=100"`
	Phone      *string `validate:"omitempty,max=20"`
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// CreateUserInput defines the data required to provision a new account.
type CreateUserInput struct {
	Username   string `validate:"required,min=3,max=150"`
	Email      string `validate:"required,email"`
	Password   string `validate:"required"`
	FirstName  string `validate:"max=100"`
	LastName   string `validate:"max=100"`
	Role       string `validate:"required"`
	EmployeeID string `validate:"max=50"`
	Department string `validate:"max=100"`
	Phone      string `validate:"max=20"`
}

// ProfileUsecase defines the interface for account and profile operations.
type ProfileUsecase interface {
	// GetProfile returns the user's account data.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies a partial update to the user's own profile fields
	// and returns the updated account data.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// ChangePassword replaces the user's password after verifying the current
	// one. Nothing is mutated when any check fails.
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error

	// CreateUser provisions a new account. Callers gate this behind the
	// user-management capability.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// DeactivateUser soft-disables an account and ends all of its sessions.
	DeactivateUser(ctx context.Context, adminID, userID uuid.UUID) error
}

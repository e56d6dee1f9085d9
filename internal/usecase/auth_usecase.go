// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mesauth/internal/domain/entity"
	"mesauth/internal/domain/service"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
	Meta     entity.ClientMeta
}

// RefreshInput defines the data required to rotate a token pair.
type RefreshInput struct {
	RefreshToken string
	Meta         entity.ClientMeta
}

// LogoutInput defines the data required to end a session.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns the replacement token pair after a rotation.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies credentials and opens a new session. Unknown usernames
	// and wrong passwords are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh retires the presented refresh token and issues a replacement
	// pair. Of N concurrent calls with the same token, exactly one succeeds.
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)

	// Logout retires the refresh token and ends its session. Calling it with
	// an already-retired or unknown token is not an error.
	Logout(ctx context.Context, input *LogoutInput) error

	// Authenticate validates an access token and returns its claims. This is
	// the hot path behind the auth middleware; it never touches the store.
	Authenticate(ctx context.Context, accessToken string) (*service.Claims, error)
}

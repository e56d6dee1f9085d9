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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the user's account data.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return user, nil
}

// UpdateProfile applies a partial update to the user's own profile fields.
// Role, username, and active status stay untouched no matter what the input
// carries; they have their own, privileged paths.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Debug("Updating profile", slog.Any("userID", userID))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Email != nil {
			found.Email = *input.Email
		}
		if input.FirstName != nil {
			found.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			found.LastName = *input.LastName
		}
		if input.Department != nil {
			found.Department = *input.Department
		}
		if input.Phone != nil {
			found.Phone = *input.Phone
		}

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.WithStack(err)
		}
		user = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to update profile")
	}
	srv.log(ctx).Info("Profile updated", slog.Any("userID", userID))

	return user, nil
}

// ChangePassword replaces the user's password after verifying the current
// one. Every check happens before any write, so a failed attempt leaves the
// stored hash untouched.
func (srv *profileService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Debug("Changing password", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 1. The caller must prove knowledge of the current password.
		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("current password mismatch")
		}

		// 2. The replacement must satisfy the password policy.
		if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
			return errors.WithStack(err)
		}

		// 3. Reusing the current password is rejected. The comparison runs
		// against the stored hash, so any spelling variant that hashes to a
		// match is caught.
		if srv.hasher.Check(input.NewPassword, user.PasswordHash) {
			return domainerrors.ErrPasswordMatchesOld.WrapMessage("password change rejected")
		}

		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
		}

		user.PasswordHash = newHash

		return errors.Wrap(userRepo.Update(ctx, user), "failed to store new password")
	})

	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to execute password change transaction")
	}
	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}

// CreateUser provisions a new account. The HTTP layer gates this behind the
// user-management capability; the usecase enforces the data rules.
func (srv *profileService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Creating user", slog.String("username", input.Username), slog.String("role", input.Role))

	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole.WrapMessage("user creation rejected")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.WithStack(err)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
		EmployeeID:   input.EmployeeID,
		Department:   input.Department,
		Phone:        input.Phone,
		PasswordHash: hashedPassword,
		Active:       true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.WithStack(repoFactory.UserRepo().Create(ctx, newUser))
	})

	if err != nil {
		srv.log(ctx).Error("Failed to create user", slog.Any("error", err), slog.String("username", input.Username))

		return nil, errors.Wrap(err, "failed to execute user creation transaction")
	}
	srv.log(ctx).Info("User created", slog.Any("userID", newUser.ID), slog.String("role", input.Role))

	return newUser, nil
}

// DeactivateUser soft-disables an account. All active sessions end and their
// refresh tokens are retired, so the account is locked out immediately rather
// than at next token expiry.
func (srv *profileService) DeactivateUser(ctx context.Context, adminID, userID uuid.UUID) error {
	srv.log(ctx).Info("Deactivating user", slog.Any("adminID", adminID), slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		sessionRepo := repoFactory.SessionRepo()
		blacklistRepo := repoFactory.BlacklistRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.Active = false
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.WithStack(err)
		}

		// Retire the refresh token of every live session before ending them.
		// The individual token expiries are unknown here, so the rows stay
		// blacklisted for the full refresh lifetime.
		now := time.Now()
		sessions, err := sessionRepo.ListByUser(ctx, userID, true)
		if err != nil {
			return errors.Wrap(err, "failed to list sessions for deactivation")
		}
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

		if _, err := sessionRepo.EndAllByUser(ctx, userID, now); err != nil {
			return errors.Wrap(err, "failed to end sessions for deactivation")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to deactivate user", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to execute deactivation transaction")
	}
	srv.log(ctx).Info("User deactivated", slog.Any("adminID", adminID), slog.Any("userID", userID))

	return nil
}

// Package impl contains the application-specific business rules implementations.
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

// dummyPasswordHash is compared against when the username does not exist, so
// the unknown-user path costs the same as a wrong-password check and the two
// cannot be told apart by timing.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and opens a new session.
//
// The failed-attempt counter must survive a failed login, so credential
// failures are signaled through loginErr while the transaction itself commits.
// Returning an error from the transaction callback would roll the counter
// update back along with everything else.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	var output *usecase.LoginOutput
	var loginErr error

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Find the user. An unknown username still pays for one bcrypt
		// comparison so it is indistinguishable from a wrong password.
		user, err := userRepo.FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				srv.hasher.Check(input.Password, dummyPasswordHash)
				loginErr = domainerrors.ErrInvalidCredentials.WrapMessage("login failed")

				return nil
			}

			return errors.Wrap(err, "failed to find user by username")
		}

		// 2. Check the password. A mismatch is recorded on the user row.
		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			if err := userRepo.RecordLoginFailure(ctx, user.ID); err != nil {
				return errors.Wrap(err, "failed to record login failure")
			}
			loginErr = domainerrors.ErrInvalidCredentials.WrapMessage("login failed")

			return nil
		}

		// 3. Deactivated accounts cannot log in, even with valid credentials.
		if !user.Active {
			loginErr = domainerrors.ErrAccountInactive.WrapMessage("login rejected")

			return nil
		}

		// 4. Generate the token pair.
		pair, err := srv.tokenService.GenerateTokenPair(user)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		// 5. Record the successful login and open the session ledger entry.
		if err := userRepo.RecordLoginSuccess(ctx, user.ID, input.Meta.IPAddress); err != nil {
			return errors.Wrap(err, "failed to record login success")
		}

		now := time.Now()
		session := &entity.Session{
			UserID:       user.ID,
			TokenID:      pair.RefreshTokenID,
			IPAddress:    input.Meta.IPAddress,
			UserAgent:    input.Meta.UserAgent,
			Active:       true,
			LastActiveAt: now,
		}
		if err := repoFactory.SessionRepo().Create(ctx, session); err != nil {
			return errors.WithStack(err)
		}

		user.LastLoginIP = input.Meta.IPAddress
		user.FailedLoginAttempts = 0
		output = &usecase.LoginOutput{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			User:         user,
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute login transaction", slog.Any("error", err), slog.String("username", input.Username))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}
	if loginErr != nil {
		srv.log(ctx).Warn("Login rejected", slog.String("username", input.Username), slog.String("reason", loginErr.Error()))

		return nil, loginErr
	}
	srv.log(ctx).Info("User logged in", slog.Any("userID", output.User.ID))

	return output, nil
}

// Refresh retires the presented refresh token and issues a replacement pair.
// The blacklist insert is the rotation's mutual-exclusion point: of N
// concurrent calls presenting the same token, exactly one insert succeeds and
// every other caller observes ErrTokenRevoked. Everything happens in one
// transaction, so a canceled request either completes the whole rotation or
// leaves the old token valid.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Debug("Attempting token refresh")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "refresh token rejected")
	}

	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("refresh token carries no usable id")
	}

	var output *usecase.RefreshOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blacklistRepo := repoFactory.BlacklistRepo()

		// 1. Replayed tokens get a direct answer without contending on the
		// insert below.
		alreadyRevoked, err := blacklistRepo.IsRevoked(ctx, tokenID)
		if err != nil {
			return errors.Wrap(err, "failed to consult token blacklist")
		}
		if alreadyRevoked {
			return domainerrors.ErrTokenRevoked.WrapMessage("refresh token already rotated")
		}

		// 2. Retire the presented token. The lookup above cannot see an
		// in-flight rotation, so the insert stays the mutual-exclusion
		// point: exactly one concurrent rotation gets past this line.
		revoked := &entity.RevokedToken{
			TokenID:   tokenID,
			UserID:    claims.UserID,
			ExpiresAt: claims.ExpiresAt.Time,
			RevokedAt: time.Now(),
		}
		if err := blacklistRepo.Revoke(ctx, revoked); err != nil {
			if errors.Is(err, repository.ErrTokenAlreadyRevoked) {
				return domainerrors.ErrTokenRevoked.WrapMessage("refresh token already rotated")
			}

			return errors.WithStack(err)
		}

		// 3. The user must still exist and be active.
		user, err := repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrTokenInvalid.WrapMessage("token subject no longer exists")
			}

			return errors.Wrap(err, "failed to find user for refresh")
		}
		if !user.Active {
			return domainerrors.ErrAccountInactive.WrapMessage("refresh rejected")
		}

		// 4. Mint the replacement pair and move the session onto it. The
		// rotating call came from the client's current network position, so
		// the session's recorded meta moves with the token.
		pair, err := srv.tokenService.GenerateTokenPair(user)
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		sessionRepo := repoFactory.SessionRepo()
		session, err := sessionRepo.FindByTokenID(ctx, tokenID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return domainerrors.ErrTokenInvalid.WrapMessage("no session bound to token")
			}

			return errors.Wrap(err, "failed to find session for refresh")
		}
		if err := sessionRepo.Rotate(ctx, session.ID, pair.RefreshTokenID, input.Meta, time.Now()); err != nil {
			return errors.Wrap(err, "failed to rotate session token")
		}

		output = &usecase.RefreshOutput{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh transaction")
	}
	srv.log(ctx).Debug("Token refreshed", slog.Any("userID", claims.UserID))

	return output, nil
}

// Logout retires the refresh token and ends its session. It is idempotent:
// an expired, malformed, or already-retired token leaves the system in the
// same logged-out state, so none of those cases is an error.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Debug("Attempting logout")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Debug("Logout with unusable token", slog.Any("error", err))

		return nil
	}

	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		revoked := &entity.RevokedToken{
			TokenID:   tokenID,
			UserID:    claims.UserID,
			ExpiresAt: claims.ExpiresAt.Time,
			RevokedAt: time.Now(),
		}
		if err := repoFactory.BlacklistRepo().Revoke(ctx, revoked); err != nil {
			if errors.Is(err, repository.ErrTokenAlreadyRevoked) {
				// A repeated logout. The first one already did the work.
				return nil
			}

			return errors.WithStack(err)
		}

		sessionRepo := repoFactory.SessionRepo()
		session, err := sessionRepo.FindByTokenID(ctx, tokenID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find session for logout")
		}

		return errors.Wrap(sessionRepo.End(ctx, session.ID, time.Now()), "failed to end session")
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute logout transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute logout transaction")
	}
	srv.log(ctx).Info("User logged out", slog.Any("userID", claims.UserID))

	return nil
}

// Authenticate validates an access token and returns its claims. Purely
// stateless: signature, expiry, and type are checked, the store is not.
func (srv *authService) Authenticate(_ context.Context, accessToken string) (*service.Claims, error) {
	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "access token rejected")
	}

	return claims, nil
}

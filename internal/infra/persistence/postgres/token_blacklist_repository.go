package postgres

import (
	"context"

	"mesauth/internal/domain/entity"
	domainerrors "mesauth/internal/domain/errors"
	"mesauth/internal/domain/repository"
	"mesauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenBlacklistRepository implements the repository.TokenBlacklistRepository interface using GORM.
type tokenBlacklistRepository struct {
	db *gorm.DB
}

// NewTokenBlacklistRepository is the constructor for tokenBlacklistRepository.
func NewTokenBlacklistRepository(db *gorm.DB) repository.TokenBlacklistRepository {
	return &tokenBlacklistRepository{
		db: db,
	}
}

// Revoke inserts the token into the blacklist. The primary key on token_id
// guarantees that for any given token exactly one caller succeeds; every other
// concurrent caller receives ErrTokenAlreadyRevoked.
func (repo *tokenBlacklistRepository) Revoke(ctx context.Context, token *entity.RevokedToken) error {
	tokenM := fromRevokedTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTokenAlreadyRevoked
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to revoke token")
	}

	return nil
}

// IsRevoked reports whether the given token has been blacklisted.
func (repo *tokenBlacklistRepository) IsRevoked(ctx context.Context, tokenID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RevokedTokenModel{}).
		Where("token_id = ?", tokenID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check token revocation")
	}

	return count > 0, nil
}

// DeleteExpired removes blacklist entries whose tokens have already expired.
// Expired tokens fail validation on their own, so keeping them blacklisted
// serves no purpose. Returns the number of rows removed.
func (repo *tokenBlacklistRepository) DeleteExpired(ctx context.Context) (int, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < NOW()").
		Delete(&model.RevokedTokenModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired revoked tokens")
	}

	return int(result.RowsAffected), nil
}

// --- Mapper Functions ---

// fromRevokedTokenDomain converts a domain RevokedToken entity to a GORM RevokedTokenModel.
func fromRevokedTokenDomain(data *entity.RevokedToken) *model.RevokedTokenModel {
	if data == nil {
		return nil
	}

	return &model.RevokedTokenModel{
		TokenID:   data.TokenID,
		UserID:    data.UserID,
		ExpiresAt: data.ExpiresAt,
		RevokedAt: data.RevokedAt,
	}
}

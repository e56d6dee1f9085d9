// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by their username.
// Username lookups are case-sensitive, matching the unique index on the column.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRole
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update persists changes to an existing user entity.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userM.ID).
		Updates(map[string]any{
			"email":         userM.Email,
			"first_name":    userM.FirstName,
			"last_name":     userM.LastName,
			"role":          userM.Role,
			"employee_id":   userM.EmployeeID,
			"department":    userM.Department,
			"phone":         userM.Phone,
			"password_hash": userM.PasswordHash,
			"active":        userM.Active,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRole
		}

		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// RecordLoginSuccess stamps the login source address and resets the failure counter.
func (repo *userRepository) RecordLoginSuccess(ctx context.Context, id uuid.UUID, ip string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_login_ip":         ip,
			"failed_login_attempts": 0,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record login success")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// RecordLoginFailure increments the failure counter for auditing purposes.
func (repo *userRepository) RecordLoginFailure(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		UpdateColumn("failed_login_attempts", gorm.Expr("failed_login_attempts + ?", 1))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record login failure")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	employeeID := ""
	if data.EmployeeID != nil {
		employeeID = *data.EmployeeID
	}

	return &entity.User{
		ID:                  data.ID,
		Username:            data.Username,
		Email:               data.Email,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		Role:                entity.Role(data.Role),
		EmployeeID:          employeeID,
		Department:          data.Department,
		Phone:               data.Phone,
		PasswordHash:        data.PasswordHash,
		Active:              data.Active,
		LastLoginIP:         data.LastLoginIP,
		FailedLoginAttempts: data.FailedLoginAttempts,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	var employeeID *string
	if data.EmployeeID != "" {
		employeeID = &data.EmployeeID
	}

	return &model.UserModel{
		ID:                  data.ID,
		Username:            data.Username,
		Email:               data.Email,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		Role:                string(data.Role),
		EmployeeID:          employeeID,
		Department:          data.Department,
		Phone:               data.Phone,
		PasswordHash:        data.PasswordHash,
		Active:              data.Active,
		LastLoginIP:         data.LastLoginIP,
		FailedLoginAttempts: data.FailedLoginAttempts,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

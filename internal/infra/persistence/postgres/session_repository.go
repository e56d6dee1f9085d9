package postgres

import (
	"context"
	"time"

	"mesauth/internal/domain/entity"
	domainerrors "mesauth/internal/domain/errors"
	"mesauth/internal/domain/repository"
	"mesauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Create persists a new session for a user.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	// Update the entity with generated values
	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByID retrieves a session by its unique ID.
func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by id")
	}

	return toSessionDomain(&sessionM), nil
}

// FindByTokenID retrieves the session currently bound to the given refresh token.
func (repo *sessionRepository) FindByTokenID(ctx context.Context, tokenID uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token id")
	}

	return toSessionDomain(&sessionM), nil
}

// ListByUser retrieves sessions for a specific user, most recent first.
// When activeOnly is true, ended sessions are excluded.
func (repo *sessionRepository) ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Session, error) {
	var sessionModels []*model.SessionModel

	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Order("created_at DESC").Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sessions by user")
	}

	sessions := make([]*entity.Session, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toSessionDomain(sessionM))
	}

	return sessions, nil
}

// Rotate rebinds an active session to a new refresh token, refreshes the
// client meta, and bumps the activity timestamp.
func (repo *sessionRepository) Rotate(ctx context.Context, sessionID uuid.UUID, newTokenID uuid.UUID, meta entity.ClientMeta, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND active = ?", sessionID, true).
		Updates(map[string]any{
			"token_id":       newTokenID,
			"ip_address":     meta.IPAddress,
			"user_agent":     meta.UserAgent,
			"last_active_at": at,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(result.Error, "refresh token already bound to a session")
		}

		return errors.Wrap(result.Error, "failed to rotate session token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// End marks a session as terminated. Ending an already-ended session is a no-op,
// so the operation is safe to repeat.
func (repo *sessionRepository) End(ctx context.Context, sessionID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ?", sessionID).
		Updates(map[string]any{
			"active":   false,
			"ended_at": gorm.Expr("COALESCE(ended_at, ?)", at),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to end session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// EndAllByUser terminates every active session for a user and reports how many were ended.
func (repo *sessionRepository) EndAllByUser(ctx context.Context, userID uuid.UUID, at time.Time) (int, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("user_id = ? AND active = ?", userID, true).
		Updates(map[string]any{
			"active":   false,
			"ended_at": at,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to end sessions by user")
	}

	return int(result.RowsAffected), nil
}

// EndExpired terminates active sessions whose last activity is older than the
// cutoff. Such sessions hold refresh tokens that have aged out and can never
// be presented again.
func (repo *sessionRepository) EndExpired(ctx context.Context, cutoff time.Time, at time.Time) (int, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("active = ? AND last_active_at < ?", true, cutoff).
		Updates(map[string]any{
			"active":   false,
			"ended_at": at,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to end expired sessions")
	}

	return int(result.RowsAffected), nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:           data.ID,
		UserID:       data.UserID,
		TokenID:      data.TokenID,
		IPAddress:    data.IPAddress,
		UserAgent:    data.UserAgent,
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		LastActiveAt: data.LastActiveAt,
		EndedAt:      data.EndedAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:           data.ID,
		UserID:       data.UserID,
		TokenID:      data.TokenID,
		IPAddress:    data.IPAddress,
		UserAgent:    data.UserAgent,
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		LastActiveAt: data.LastActiveAt,
		EndedAt:      data.EndedAt,
	}
}

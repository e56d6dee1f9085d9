package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mesauth/internal/delivery/http/middleware"
	"mesauth/internal/delivery/http/response"
	"mesauth/internal/domain/entity"
	"mesauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// userResponse is the client-facing view of an account. The password hash and
// the failure counter never appear here.
type userResponse struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	EmployeeID string    `json:"employee_id,omitempty"`
	Department string    `json:"department,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// capabilityResponse mirrors the role's capability set for UI gating.
type capabilityResponse struct {
	CanModifySites        bool `json:"can_modify_sites"`
	CanModifyBatches      bool `json:"can_modify_batches"`
	CanAccessAuditLogs    bool `json:"can_access_audit_logs"`
	CanApproveInspections bool `json:"can_approve_inspections"`
	CanManageUsers        bool `json:"can_manage_users"`
}

// profileResponse is the account view plus derived capabilities.
type profileResponse struct {
	userResponse
	Capabilities capabilityResponse `json:"capabilities"`
}

// updateProfileRequest carries the self-service profile fields. Absent fields
// stay untouched.
type updateProfileRequest struct {
	Email      *string `json:"email" validate:"omitempty,email"`
	FirstName  *string `json:"first_name" validate:"omitempty,max=100"`
	LastName   *string `json:"last_name" validate:"omitempty,max=100"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	Phone      *string `json:"phone" validate:"omitempty,max=20"`
}

// changePasswordRequest carries a password change. Strength rules live in the
// core; the transport only requires both fields to be present.
type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// createUserRequest is the admin-facing account provisioning payload.
type createUserRequest struct {
	Username   string `json:"username" validate:"required,min=3,max=150"`
	Password   string `json:"password" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	FirstName  string `json:"first_name" validate:"omitempty,max=100"`
	LastName   string `json:"last_name" validate:"omitempty,max=100"`
	Role       string `json:"role" validate:"required,oneof=admin qa operator"`
	EmployeeID string `json:"employee_id" validate:"omitempty,max=50"`
	Department string `json:"department" validate:"omitempty,max=100"`
	Phone      string `json:"phone" validate:"omitempty,max=20"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		FullName:   user.FullName(),
		Role:       user.Role.String(),
		EmployeeID: user.EmployeeID,
		Department: user.Department,
		Phone:      user.Phone,
		Active:     user.Active,
		CreatedAt:  user.CreatedAt,
	}
}

func toCapabilityResponse(set entity.CapabilitySet) capabilityResponse {
	return capabilityResponse{
		CanModifySites:        set.CanModifySites,
		CanModifyBatches:      set.CanModifyBatches,
		CanAccessAuditLogs:    set.CanAccessAuditLogs,
		CanApproveInspections: set.CanApproveInspections,
		CanManageUsers:        set.CanManageUsers,
	}
}

// authenticatedUserID pulls the user ID that Authenticate stored on the context.
func authenticatedUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// ProfileHandler holds dependencies for account-related handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profileUC usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		logger:    logger,
	}
}

// GetProfile handles the request to get the current user's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profileResponse{
		userResponse: toUserResponse(user),
		Capabilities: toCapabilityResponse(user.Role.Capabilities()),
	}, "Profile retrieved successfully")
}

// UpdateProfile handles the partial self-service profile update.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Phone:      req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile updated successfully")
}

// ChangePassword handles the password change request.
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.profileUC.ChangePassword(c.Request().Context(), userID, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password changed"}, "Password changed successfully")
}

// CreateUser handles admin account provisioning.
func (h *ProfileHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user creation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.profileUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Username:   req.Username,
		Password:   req.Password,
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       req.Role,
		EmployeeID: req.EmployeeID,
		Department: req.Department,
		Phone:      req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "User created successfully")
}

// DeactivateUser handles admin account deactivation.
func (h *ProfileHandler) DeactivateUser(c echo.Context) error {
	adminID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if err := h.profileUC.DeactivateUser(c.Request().Context(), adminID, targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deactivated"}, "User deactivated successfully")
}

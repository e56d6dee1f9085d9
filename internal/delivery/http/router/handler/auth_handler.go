// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"mesauth/internal/delivery/http/response"
	"mesauth/internal/domain/entity"
	"mesauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// loginRequest is the wire shape of a login call.
type loginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Password string `json:"password" validate:"required"`
}

// refreshRequest carries the refresh token to rotate.
type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// logoutRequest carries the refresh token to retire. The token is optional:
// a client that already lost it still gets a clean logout.
type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// tokenPairResponse is the client-facing view of an issued pair.
type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// loginResponse bundles the token pair with the account summary.
type loginResponse struct {
	tokenPairResponse
	User userResponse `json:"user"`
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// clientMeta captures the caller's network identity for the session ledger.
func clientMeta(c echo.Context) entity.ClientMeta {
	return entity.ClientMeta{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Meta:     clientMeta(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		tokenPairResponse: tokenPairResponse{
			AccessToken:  output.AccessToken,
			RefreshToken: output.RefreshToken,
			TokenType:    "Bearer",
		},
		User: toUserResponse(output.User),
	}, "Login successful")
}

// Refresh handles the token rotation request.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Refresh(c.Request().Context(), &usecase.RefreshInput{
		RefreshToken: req.RefreshToken,
		Meta:         clientMeta(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		TokenType:    "Bearer",
	}, "Token refreshed successfully")
}

// Logout handles the user logout request. Logout never fails on the token:
// a missing, expired, or already-retired refresh token still confirms the
// logged-out state.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if req.RefreshToken != "" {
		if err := h.authUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
			return errors.WithStack(err)
		}
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

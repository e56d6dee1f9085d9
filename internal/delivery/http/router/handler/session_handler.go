package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mesauth/internal/delivery/http/response"
	"mesauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// sessionResponse is the client-facing view of one session record.
type sessionResponse struct {
	ID           uuid.UUID  `json:"id"`
	IPAddress    string     `json:"ip_address"`
	UserAgent    string     `json:"user_agent"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastActiveAt time.Time  `json:"last_active_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
}

func toSessionResponse(info *usecase.SessionInfo) sessionResponse {
	return sessionResponse{
		ID:           info.ID,
		IPAddress:    info.IPAddress,
		UserAgent:    info.UserAgent,
		Active:       info.Active,
		CreatedAt:    info.CreatedAt,
		LastActiveAt: info.LastActiveAt,
		EndedAt:      info.EndedAt,
	}
}

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(sessionUC usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// ListSessions returns the caller's sessions. By default only active ones;
// pass ?all=true to include ended sessions.
func (h *SessionHandler) ListSessions(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	activeOnly := c.QueryParam("all") != "true"

	infos, err := h.sessionUC.ListSessions(c.Request().Context(), userID, activeOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	sessions := make([]sessionResponse, 0, len(infos))
	for _, info := range infos {
		sessions = append(sessions, toSessionResponse(info))
	}

	return response.Success(c, http.StatusOK, map[string]any{"sessions": sessions}, "Sessions retrieved successfully")
}

// TerminateSession ends one of the caller's sessions by ID.
func (h *SessionHandler) TerminateSession(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	if err := h.sessionUC.TerminateSession(c.Request().Context(), userID, sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Session terminated"}, "Session terminated successfully")
}

// TerminateAllSessions ends every active session of the caller, including the
// one backing the current refresh token.
func (h *SessionHandler) TerminateAllSessions(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	ended, err := h.sessionUC.TerminateAllSessions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"terminated": ended}, "Sessions terminated successfully")
}

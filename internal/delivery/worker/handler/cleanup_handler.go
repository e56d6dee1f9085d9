package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "mesauth/internal/delivery/context"
	"mesauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CleanupHandler runs the maintenance path: pruning expired blacklist rows and
// ending sessions idle past the refresh lifetime. The endpoint is triggered by
// an external scheduler (cron, Cloud Scheduler push) and is safe to re-run.
type CleanupHandler struct {
	logger    *slog.Logger
	sessionUC usecase.SessionUsecase
}

// CleanupHandlerParams holds dependencies for the CleanupHandler
type CleanupHandlerParams struct {
	fx.In

	Logger    *slog.Logger
	SessionUC usecase.SessionUsecase
}

// NewCleanupHandler creates a new CleanupHandler
func NewCleanupHandler(params CleanupHandlerParams) *CleanupHandler {
	return &CleanupHandler{
		logger:    params.Logger,
		sessionUC: params.SessionUC,
	}
}

// HandleCleanup processes a scheduled cleanup trigger.
func (h *CleanupHandler) HandleCleanup(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	prunedTokens, endedSessions, err := h.sessionUC.CleanupExpired(ctx)
	if err != nil {
		logger.Error("Cleanup run failed", slog.Any("error", err))

		return errors.WithStack(err)
	}

	logger.Info("Cleanup run finished",
		slog.Int("prunedTokens", prunedTokens),
		slog.Int("endedSessions", endedSessions),
	)

	return c.JSON(http.StatusOK, map[string]int{
		"pruned_tokens":  prunedTokens,
		"ended_sessions": endedSessions,
	})
}

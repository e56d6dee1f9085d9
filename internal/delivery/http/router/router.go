// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mesauth/internal/delivery/http/middleware"
	"mesauth/internal/delivery/http/router/handler"
	"mesauth/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	SessionHandler *handler.SessionHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	sessionHandler *handler.SessionHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		sessionHandler: params.SessionHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Self-service routes that require authentication
	accountGroup := e.Group("/auth")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/profile", r.profileHandler.GetProfile)
		accountGroup.PUT("/profile", r.profileHandler.UpdateProfile)
		accountGroup.POST("/password/change", r.profileHandler.ChangePassword)

		accountGroup.GET("/sessions", r.sessionHandler.ListSessions)
		accountGroup.POST("/sessions/:id/terminate", r.sessionHandler.TerminateSession)
		accountGroup.POST("/sessions/terminate-all", r.sessionHandler.TerminateAllSessions)
	}

	// Admin routes that require authentication and the user-management capability
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireCapability(func(set entity.CapabilitySet) bool {
		return set.CanManageUsers
	}))
	{
		adminGroup.POST("/users", r.profileHandler.CreateUser)
		adminGroup.POST("/users/:id/deactivate", r.profileHandler.DeactivateUser)
	}
}

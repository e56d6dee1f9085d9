package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"mesauth/config"
	"mesauth/internal/delivery"
	sharedmiddleware "mesauth/internal/delivery/middleware"
	"mesauth/internal/delivery/http/middleware"
	"mesauth/internal/delivery/http/router"
	"mesauth/internal/delivery/http/validator"
	"mesauth/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *middleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	// Middleware order matters: recover first, then request ID so the
	// request-scoped logger exists before anything logs.
	echoServer.Use(echomiddleware.Recover())
	requestIDMiddleware := sharedmiddleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(echomiddleware.CORS())

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

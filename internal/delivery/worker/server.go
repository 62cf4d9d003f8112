// Package worker is the background delivery that drains the email queue.
package worker

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"bastion/config"
	"bastion/internal/delivery"
	"bastion/internal/delivery/middleware"
	"bastion/internal/delivery/worker/handler"
	"bastion/internal/domain/lifecycle"
	"bastion/internal/domain/service"
	"bastion/internal/infra/queue"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg          *config.Config
	logger       *slog.Logger
	server       *echo.Echo
	consumer     service.EmailQueueConsumer
	emailHandler *handler.EmailHandler

	cancelConsume context.CancelFunc
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	EmailHandler *handler.EmailHandler
	Consumer     service.EmailQueueConsumer `optional:"true"`
}

// NewServer creates a new worker server. It always exposes a small HTTP
// surface (health check plus the Pub/Sub push endpoint); with the Redis
// provider it additionally runs a pull consumer loop.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Pub/Sub push endpoint
	e.POST("/push", params.EmailHandler.HandlePush)

	srv := &workerServer{
		cfg:          params.Cfg,
		logger:       params.Logger,
		server:       e,
		consumer:     params.Consumer,
		emailHandler: params.EmailHandler,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the consumer loop (if configured) and the worker HTTP server.
func (s *workerServer) Serve(ctx context.Context) error {
	if s.usesPullConsumer() {
		consumeCtx, cancel := context.WithCancel(ctx)
		s.cancelConsume = cancel
		go s.consumeLoop(consumeCtx)
	}

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) usesPullConsumer() bool {
	return s.consumer != nil &&
		s.cfg.Queue != nil &&
		s.cfg.Queue.Provider == queue.ProviderRedis
}

// consumeLoop drains the queue until the context is cancelled. A failed
// job is logged and dropped; the user can re-request the mail.
func (s *workerServer) consumeLoop(ctx context.Context) {
	s.logger.Info("Starting email queue consumer")

	for {
		job, err := s.consumer.NextVerifyEmail(ctx)
		if err != nil {
			if ctx.Err() != nil {
				s.logger.Info("Email queue consumer stopped")

				return
			}

			s.logger.Error("Failed to fetch email job", slog.Any("error", err))

			continue
		}

		if err := s.emailHandler.HandleJob(ctx, job); err != nil {
			s.logger.Error("Failed to process email job",
				slog.String("user_id", job.UserID.String()),
				slog.Any("error", err),
			)
		}
	}
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	if s.cancelConsume != nil {
		s.cancelConsume()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/helpdesk-labs/ticket-tracker/internal/api/http"
	"github.com/helpdesk-labs/ticket-tracker/internal/api/http/handlers"
	"github.com/helpdesk-labs/ticket-tracker/internal/auth"
	"github.com/helpdesk-labs/ticket-tracker/internal/config"
	"github.com/helpdesk-labs/ticket-tracker/internal/events"
	"github.com/helpdesk-labs/ticket-tracker/internal/observability"
	"github.com/helpdesk-labs/ticket-tracker/internal/persistence"
	"github.com/helpdesk-labs/ticket-tracker/internal/repository"
	"github.com/helpdesk-labs/ticket-tracker/internal/service"
	"github.com/helpdesk-labs/ticket-tracker/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	auditRepo := repository.NewTicketAuditRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	events.NewAMQPPublisher(cfg.AMQP, logger).RegisterHandlers(dispatcher)
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger))

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: ticketRepo,
		AuditRepo:  auditRepo,
		Dispatcher: dispatcher,
	})
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, *cfg)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		AuthMiddleware: authMiddleware,
		RateLimiter:    httptransport.NewRateLimiter(cfg.RateLimit, redis.Client),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

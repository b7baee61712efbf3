package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gulfacorns/internal/config"
	"gulfacorns/internal/database"
	"gulfacorns/internal/events"
	"gulfacorns/internal/logger"
	"gulfacorns/internal/router"
	"gulfacorns/internal/scheduler"
	"gulfacorns/internal/services"
	"gulfacorns/internal/validator"

	"github.com/gin-gonic/gin"
)

// @title           Gulf Acorns API
// @version         1.0
// @description     Spare-change round-ups for a demo user, swept into invest lots.

// @host      localhost:8080
// @BasePath  /api/v1

const shutdownTimeout = 10 * time.Second

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	publisher, err := newPublisher(appConfig)
	if err != nil {
		return err
	}
	defer publisher.Close()

	// Initialize services
	svc := services.New(dbManager.DB(), publisher)

	demoUser, err := svc.User.EnsureUser(appConfig.DemoUserEmail, appConfig.DemoUserName)
	if err != nil {
		return fmt.Errorf("failed to provision demo user: %w", err)
	}
	log.Infow("Acting as demo user", "user_id", demoUser.ID, "email", demoUser.Email)

	if appConfig.AutoInvestCron != "" {
		sched := scheduler.New(svc.Invest, demoUser.ID, appConfig.AutoInvestPortfolio)
		if err := sched.Register(appConfig.AutoInvestCron); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()
	}

	engine := router.New(svc, router.Options{
		DemoUserID:     demoUser.ID,
		MigrationToken: appConfig.MigrationToken,
		Migrator:       dbManager,
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Gulf Acorns backend server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newPublisher connects to the broker when AMQP_URL is set and otherwise
// drops events.
func newPublisher(cfg *config.Config) (events.Publisher, error) {
	if cfg.AMQPURL == "" {
		logger.Get().Info("AMQP_URL not set, events will not be published")
		return events.NewNoopPublisher(), nil
	}
	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to message broker: %w", err)
	}
	logger.Get().Infow("Publishing events", "exchange", cfg.AMQPExchange)
	return publisher, nil
}

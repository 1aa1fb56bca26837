package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StormyDevil/azure-communication-services-solution/internal/acs"
	"github.com/StormyDevil/azure-communication-services-solution/internal/cache/redis"
	"github.com/StormyDevil/azure-communication-services-solution/internal/config"
	"github.com/StormyDevil/azure-communication-services-solution/internal/db/gormdb"
	"github.com/StormyDevil/azure-communication-services-solution/internal/email"
	"github.com/StormyDevil/azure-communication-services-solution/internal/handler"
	"github.com/StormyDevil/azure-communication-services-solution/internal/logging"
	mesgRepo "github.com/StormyDevil/azure-communication-services-solution/internal/repository/gorm/message"
	routes "github.com/StormyDevil/azure-communication-services-solution/internal/router"
	"github.com/StormyDevil/azure-communication-services-solution/internal/scheduler"
	"github.com/StormyDevil/azure-communication-services-solution/internal/secrets"
	"github.com/StormyDevil/azure-communication-services-solution/internal/secrets/keyvault"
	"github.com/StormyDevil/azure-communication-services-solution/internal/server"
	"github.com/StormyDevil/azure-communication-services-solution/internal/service"
	"github.com/StormyDevil/azure-communication-services-solution/internal/sms"
	"go.uber.org/zap"
)

func main() {
	// Base context for the whole application lifetime.
	rootCtx := context.Background()

	logger, err := logging.New()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	// Load configuration from environment/.env, then apply the Key Vault
	// fallback for the ACS credentials.
	cfg := config.New()
	cfg.ResolveACS(rootCtx, func(vaultURL string) (secrets.Source, error) {
		return keyvault.New(vaultURL)
	}, logger)

	if cfg.ACS.ConnectionString == "" {
		logger.Fatal("no ACS connection string available; set ACS_CONNECTION_STRING or KEY_VAULT_URL")
	}

	cs, err := acs.ParseConnectionString(cfg.ACS.ConnectionString)
	if err != nil {
		logger.Fatal("invalid ACS connection string", zap.Error(err))
	}

	// Init cache.
	cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(rootCtx); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	// Init DB.
	dsn := cfg.PostgresDSN()
	db, err := gormdb.New(dsn)
	if err != nil {
		logger.Fatal("failed to connect db", zap.Error(err))
	}

	// Shared signing transport for SMS, email and identity calls.
	transport := acs.NewHMACClient(cs)
	smsSvc := sms.NewService(sms.NewRESTClient(transport))
	emailSvc := email.NewService(email.NewRESTClient(transport), cfg.Email.PollInterval)

	// Init repository and services.

	// Message
	msgRepository := mesgRepo.NewRepository(db)
	dispatcher := service.NewACSDispatcher(smsSvc, emailSvc, cfg.SMS.FromNumber, cfg.Email.SenderAddress)
	msgSvc := service.NewMessageService(
		msgRepository,
		dispatcher,
		cache,
		logger,
		cfg.Worker.BatchSize,
		cfg.Worker.MaxWorkers,
		cfg.Worker.PerMessageTimeout,
	)

	// Cron
	cron := scheduler.NewSchedulerService(
		msgSvc,
		logger,
		cfg.Scheduler.Interval,
		cfg.Scheduler.BatchTimeout,
	)

	// HTTP dependencies & server wiring.

	// Handlers
	homeHandler := handler.NewHomeHandler(cfg.ACS.ConnectionString != "")
	messageHandler := handler.NewMessageHandler(msgSvc, cron)
	sendHandler := handler.NewSendHandler(smsSvc, emailSvc, cfg.SMS.FromNumber, cfg.Email.SenderAddress)

	// Init route dependencies
	deps := routes.AppDeps{
		Home:    homeHandler,
		Message: messageHandler,
		Send:    sendHandler,
	}

	// Init Server
	addr := fmt.Sprintf("%s:%s", cfg.API.Host, cfg.API.Port)
	srv := server.New(addr, deps, logger)

	// Create a context that is cancelled on SIGINT/SIGTERM (Ctrl+C, docker stop etc.).
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the HTTP server in a separate goroutine so we can listen for signals.
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", addr))

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Start the scheduler after everything is wired up.
	if err := cron.Start(); err != nil {
		logger.Fatal("scheduler start error", zap.Error(err))
	}
	logger.Info("scheduler started")

	// Block until we receive a shutdown signal.
	<-ctx.Done()
	logger.Info("shutdown signal received, starting graceful shutdown")

	// Give components some time to shut down cleanly.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stop the scheduler (waits for in-flight batch to finish or timeout).
	if err := cron.Stop(); err != nil {
		logger.Fatal("scheduler could not stop", zap.Error(err))
	}
	logger.Info("scheduler stopped")

	// Gracefully shut down the HTTP server.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("HTTP server stopped")
	}

	logger.Info("shutdown complete")
}

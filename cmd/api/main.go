package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ledgerUseCase "github.com/michaelbartlett17/loyalty-ledger/internal/domain/usecase/ledger"
	userUseCase "github.com/michaelbartlett17/loyalty-ledger/internal/domain/usecase/user"

	"github.com/gin-gonic/gin"
	"github.com/michaelbartlett17/loyalty-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/michaelbartlett17/loyalty-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/michaelbartlett17/loyalty-ledger/internal/infrastructure/adapter/database"
	"github.com/michaelbartlett17/loyalty-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/michaelbartlett17/loyalty-ledger/internal/infrastructure/adapter/logger"
	"github.com/michaelbartlett17/loyalty-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/michaelbartlett17/loyalty-ledger/internal/infrastructure/adapter/time"
	"github.com/michaelbartlett17/loyalty-ledger/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		JSON:       cfg.Logger.Format == "json",
		File:       cfg.Logger.File,
		MaxSizeMB:  cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAgeDays: cfg.Logger.MaxAgeDays,
	})
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	conn, err := database.NewConnection(&database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		LogLevel:        cfg.Logger.Level,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	if err := migration.NewManager(conn.DB, appLogger).MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	userRepo, err := repository.NewUserRepository(conn.DB, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to build user repository", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	transactionRepo, err := repository.NewTransactionRepository(conn.DB, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to build transaction repository", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	uow := database.NewUnitOfWork(conn.DB, userRepo, transactionRepo, appLogger)

	userService := userUseCase.NewService(userRepo, appLogger)
	ledgerService := ledgerUseCase.NewService(uow, appLogger)

	userHandler := handler.NewUserHandler(userService, appLogger)
	ledgerHandler := handler.NewLedgerHandler(ledgerService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, userHandler, ledgerHandler, cfg.Auth.APIKey)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting HTTP server", map[string]any{
			"addr":        server.Addr,
			"environment": cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server stopped", nil)
}

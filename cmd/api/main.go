package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	infraAuthz "github.com/ChosunOne/treasury-sub000/internal/infrastructure/authz"
	"github.com/ChosunOne/treasury-sub000/internal/infrastructure/di"
	"github.com/ChosunOne/treasury-sub000/internal/infrastructure/worker"
	"github.com/ChosunOne/treasury-sub000/internal/interface/middleware"
	"github.com/ChosunOne/treasury-sub000/internal/interface/router"
	"github.com/ChosunOne/treasury-sub000/internal/interface/server"
	"github.com/ChosunOne/treasury-sub000/pkg/config"
	"github.com/ChosunOne/treasury-sub000/pkg/logger"
)

func main() {
	// Logger setup
	if err := logger.Setup(logger.DefaultConfig()); err != nil {
		slog.Error("failed to setup logger", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize DI Container
	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	handlers := di.NewHandlers(container)
	middlewares := di.NewMiddlewares(container)

	// Setup Server
	serverConfig := server.DefaultConfig()
	serverConfig.Port = cfg.Server.Port
	serverConfig.Debug = cfg.Server.Debug
	srv := server.NewServer(serverConfig)
	e := srv.Echo()

	// Global middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityHeadersConfig{
		EnableHSTS:    cfg.Security.EnableHSTS,
		CSPDirectives: "default-src 'self'",
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Security.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Setup Router
	router.NewRouter(e, handlers, middlewares).Setup()

	// Start background workers
	workerMgr := worker.NewManager()
	if oracle, ok := container.PolicyOracle.(*infraAuthz.CasbinOracle); ok {
		workerMgr.Register(worker.NewPolicyReloadJob(oracle.Reload))
	}
	workerMgr.Register(worker.NewCursorKeyWarmJob(container.CursorKeys.Current))
	workerMgr.Register(worker.NewHealthCheckJob(func(ctx context.Context) error {
		return container.PgClient.Pool().Ping(ctx)
	}))
	workerMgr.Start()

	// Start server
	slog.Info("starting server", "port", cfg.Server.Port)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	workerMgr.Shutdown(10 * time.Second)

	if err := srv.Shutdown(context.Background()); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	slog.Info("server stopped")
}

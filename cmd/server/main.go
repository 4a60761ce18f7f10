package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"finance-view/internal/config"
	"finance-view/internal/database"
	"finance-view/internal/handlers"
	"finance-view/internal/middleware"
	"finance-view/internal/repositories"
	"finance-view/internal/services"
	"finance-view/internal/session"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const controlsPath = "/api/v1/view/controls"

func main() {
	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	sessions, err := session.NewManager(cfg.Session)
	if err != nil {
		return err
	}
	defer sessions.Close()
	tokens := session.NewTokens(cfg.Session)

	transactionRepo := repositories.NewTransactionRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	metrics := services.NewPrometheusMetrics()
	location := cfg.View.Location

	accountService := services.NewAccountService(accountRepo, logger)

	// category changes rebuild views, and views read category options
	var viewService services.ViewServiceInterface
	categoryService := services.NewCategoryService(categoryRepo, transactionRepo,
		services.InvalidatorFunc(func() { viewService.Invalidate() }))
	viewService = services.NewViewService(sessions, transactionRepo, accountService, categoryService, metrics,
		services.ViewOptions{
			DefaultPageSize: cfg.View.DefaultPageSize,
			RenderBatchSize: cfg.View.RenderBatchSize,
			RangeDays:       cfg.View.DefaultRangeDays,
			Location:        location,
		}, logger)
	transactionService := services.NewTransactionService(transactionRepo, accountRepo, accountService,
		viewService, metrics, location, logger)
	reportService := services.NewReportService(transactionRepo, categoryRepo, metrics, location, logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(controlsPath))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowCredentials: true,
		ExposeHeaders:    []string{middleware.TraceIDHeader},
	}))
	e.Use(middleware.RateLimiter(ctx, cfg.Security.RateLimitPerSecond, 0))

	health := handlers.NewHealthCheckHandler(db)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handlers.RegisterRoutes(e, handlers.Handlers{
		View:        handlers.NewViewHandler(viewService, logger),
		Transaction: handlers.NewTransactionHandler(transactionService, logger),
		Category:    handlers.NewCategoryHandler(categoryService),
		Account:     handlers.NewAccountHandler(accountService),
		Report:      handlers.NewReportHandler(reportService, location),
	}, middleware.Session(tokens, cfg.Session))

	if cfg.IsDevelopment() {
		demoData := services.NewDemoDataService(transactionRepo, accountRepo, viewService, location, logger)
		handlers.RegisterDevRoutes(e, handlers.NewDevHandler(demoData, logger))
	}

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", addr, "env", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("Server stopped")
	return nil
}

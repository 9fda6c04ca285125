package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"date-arithmetic-service/config"
	"date-arithmetic-service/internal/datecalc/usecase"
	"date-arithmetic-service/internal/httpserver"
	"date-arithmetic-service/internal/middleware"
	"date-arithmetic-service/pkg/clock"
	"date-arithmetic-service/pkg/datemath"
	"date-arithmetic-service/pkg/log"
)

// @title       Date Arithmetic API
// @description Add or subtract calendar days and weeks from ISO 8601 dates.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Date Arithmetic Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date arithmetic domain
	parser, err := datemath.NewParser(cfg.Date.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid timezone %q: %v", cfg.Date.Timezone, err)
	}
	logger.Infof(ctx, "Timezone: %s", parser.Location())
	dateCalcUC := usecase.New(logger, parser, clock.System())

	// 4. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.Config{
			Environment:    cfg.Environment.Name,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		DateCalcUseCase: dateCalcUC,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	logger.Infof(ctx, "Server running on port %d", cfg.HTTPServer.Port)
	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}
	logger.Info(ctx, "Server stopped")
}

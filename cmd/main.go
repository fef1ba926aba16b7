package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/andriyanto/user-service/config"
	"github.com/andriyanto/user-service/db"
	"github.com/andriyanto/user-service/internal/user/handler"
	repo "github.com/andriyanto/user-service/internal/user/repository/postgres"
	"github.com/andriyanto/user-service/internal/user/service"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	ctx := context.Background()
	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := repo.NewPostgresRepository(pool)
	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.TokenExpiryMin)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	userService := service.NewUserService(userRepo, hasher, tokenService)
	userHandler := handler.NewUserHandler(userService, tokenService, cfg)

	app := fiber.New()
	handler.RegisterRoutes(app, userHandler)

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

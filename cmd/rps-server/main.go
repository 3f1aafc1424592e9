package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/mcoot/rpsgame/internal/api"
	"github.com/mcoot/rpsgame/internal/factory"
	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/scheduler"
	"github.com/mcoot/rpsgame/internal/services/auth"
	redisstorage "github.com/mcoot/rpsgame/internal/storage/redis"
	"github.com/mcoot/rpsgame/internal/web"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// A missing .env is fine; real environment variables win either way
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded .env")
	}

	cfg, serverCfg, err := loadConfig(logger)
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// API and web UI share one router
	router := mux.NewRouter()
	api.Register(router, api.RouterConfig{
		Logger:          logger,
		AuthService:     app.AuthService,
		MatchController: app.MatchController,
		Broadcaster:     app.Broadcaster,
		HubManager:      app.HubManager,
	})
	web.Register(router, web.RouterConfig{
		Logger:          logger,
		AuthService:     app.AuthService,
		MatchController: app.MatchController,
		HubManager:      app.HubManager,
		Broadcaster:     app.Broadcaster,
		Random:          app.Random,
		StaticDir:       os.Getenv("STATIC_DIR"),
	})

	// Housekeeping jobs
	sched, err := scheduler.New(scheduler.DefaultConfig(), app.AuthService, app.HubManager, app.Storage, app.Clock, logger)
	if err != nil {
		logger.Error("failed to create scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}
	sched.Start()

	server := api.NewServer(router, serverCfg, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	exitCode := 0
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			exitCode = 1
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			exitCode = 1
		}
	}

	if err := sched.Shutdown(); err != nil {
		logger.Warn("scheduler shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
	os.Exit(exitCode)
}

// loadConfig builds the factory and server configuration from the environment
func loadConfig(logger *slog.Logger) (factory.Config, api.ServerConfig, error) {
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}
	serverCfg := api.DefaultServerConfig()

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return cfg, serverCfg, fmt.Errorf("PORT: %w", err)
		}
		serverCfg.Port = p
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			return cfg, serverCfg, errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	policy := model.DefaultRoundsPolicy()
	if v := os.Getenv("RPS_MAX_ROUNDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, serverCfg, fmt.Errorf("RPS_MAX_ROUNDS must be a non-negative integer, got %q", v)
		}
		policy.Max = n
	}
	cfg.RoundsPolicy = &policy

	if v := os.Getenv("RPS_DEFAULT_ROUNDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, serverCfg, fmt.Errorf("RPS_DEFAULT_ROUNDS must be a positive integer, got %q", v)
		}
		policy.Default = n
	}
	// The built-in default must also fit a lowered RPS_MAX_ROUNDS
	if err := policy.Check(); err != nil {
		return cfg, serverCfg, fmt.Errorf("RPS_DEFAULT_ROUNDS: %w", err)
	}

	if v := os.Getenv("SESSION_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, serverCfg, fmt.Errorf("SESSION_DURATION: %w", err)
		}
		cfg.AuthConfig = auth.Config{SessionDuration: d}
	}

	return cfg, serverCfg, nil
}

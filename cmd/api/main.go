package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/elhenawym124-ops/chatai-sub002/config"
	"github.com/elhenawym124-ops/chatai-sub002/internal/httpserver"
	"github.com/elhenawym124-ops/chatai-sub002/internal/quota"
	routingUC "github.com/elhenawym124-ops/chatai-sub002/internal/routing/usecase"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/log"
)

// @title       ChatAI Response Routing API
// @description AI response routing with quota-aware credential failover and prompt composition.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting ChatAI routing service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Fatalf(ctx, "Failed to ping database: %v", err)
	}
	logger.Info(ctx, "Database connected")

	// 4. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		DB:           db,
		JWTSecret:    cfg.Auth.JWTSecret,
		GeminiAPIURL: cfg.Gemini.APIURL,
		Routing: routingUC.Config{
			CallTimeout: cfg.Routing.CallTimeout,
		},
		Quota: quota.Config{
			ResetWindow:      cfg.Quota.ResetWindow,
			FailureThreshold: cfg.Quota.FailureThreshold,
			CircuitCooldown:  cfg.Quota.CircuitCooldown,
		},
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

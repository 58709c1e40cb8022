package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/gridironfacts/nfl-data-service/internal/config"
	"github.com/gridironfacts/nfl-data-service/internal/logging"
	"github.com/gridironfacts/nfl-data-service/internal/server"
)

const appVersion = "dev"

func main() {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "nfl-data-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

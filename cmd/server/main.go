package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/config"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/logging"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg, err := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "recruiting-dashboard-service",
		Version: appVersion,
	})
	if err != nil {
		logging.Error(logger, "invalid configuration", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

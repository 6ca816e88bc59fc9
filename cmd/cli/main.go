package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/cli"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/config"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}

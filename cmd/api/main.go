package main

import (
	"context"
	"log"

	"github.com/ShuvayuX/paris-startup-map/internal/config"
	"github.com/ShuvayuX/paris-startup-map/internal/server"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	app, err := server.New(ctx, cfg)
	if err != nil {
		cfg.ServerLog.Fatalf("failed to assemble application: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("server failed to start: %v", err)
	}
}

package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"superhero/directory/internal/config"
	"superhero/directory/internal/container"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting Superhero Directory...")

	// Keys usually live in .env next to the binary
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Failed to load .env: %v", err)
	}

	// Load configuration using viper
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := log.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level %q: %v", cfg.App.LogLevel, err)
	}
	log.SetLevel(level)
	log.Info("Configuration loaded successfully")

	if cfg.Marvel.PublicKey == "" || cfg.Marvel.PrivateKey == "" {
		log.Warn("⚠️ Marvel API keys are not set, requests will be rejected")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize container with all dependencies
	app, err := container.New(ctx, cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Run the application
	if err := app.Run(ctx); err != nil {
		log.Fatalf("Application exited with error: %v", err)
	}

	log.Info("Application finished successfully")
}

// Package main is the entry point for TermQuest.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/termquest/internal/config"
	"github.com/samdwyer/termquest/internal/game"
	"github.com/samdwyer/termquest/internal/logging"
	"github.com/samdwyer/termquest/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sessionID := uuid.NewString()

	// The terminal belongs to the game, so logs go to a file and the debug panel
	ring := logging.NewRing(logging.DebugLines)
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel, ring)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("session started", zap.String("session", sessionID), zap.String("config", os.Getenv(config.FileEnv)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry {
		telemetry.ConfigureHoneycomb(cfg.Dataset)
		shutdown, err := telemetry.Setup(ctx, sessionID)
		if err != nil {
			// Continue without telemetry - game still works
			logger.Warn("telemetry setup failed", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}
	}

	g, err := game.New(cfg, logger, ring)
	if err != nil {
		logger.Error("failed to initialize game", zap.Error(err))
		log.Fatalf("Failed to initialize game: %v", err)
	}
	defer g.Close()

	if err := g.Run(ctx); err != nil {
		g.Close()
		logger.Error("game stopped", zap.Error(err))
		log.Fatalf("Game error: %v", err)
	}
}

// Package main is the entry point for Tresoria.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/Phoemerrion/tresoria/internal/config"
	"github.com/Phoemerrion/tresoria/internal/game"
	"github.com/Phoemerrion/tresoria/internal/gamedata"
	"github.com/Phoemerrion/tresoria/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	env, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, env.Telemetry())
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	registry, err := gamedata.LoadPresetRegistry()
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}
	cfg, err := env.GameConfig(registry)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	g, err := game.NewTerminal(ctx, cfg, env.LogSize)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

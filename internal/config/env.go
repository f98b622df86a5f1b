// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/Phoemerrion/tresoria/internal/game"
	"github.com/Phoemerrion/tresoria/internal/gamedata"
	"github.com/Phoemerrion/tresoria/internal/telemetry"
	"github.com/Phoemerrion/tresoria/internal/world"
)

// Env holds the raw TRESORIA_* settings.
type Env struct {
	BoardWidth  int    `env:"TRESORIA_BOARD_WIDTH"  envDefault:"30"`
	BoardHeight int    `env:"TRESORIA_BOARD_HEIGHT" envDefault:"15"`
	Preset      string `env:"TRESORIA_PRESET"       envDefault:"classic"`
	Strategy    string `env:"TRESORIA_STRATEGY"` // overrides the preset when set
	Seed        int64  `env:"TRESORIA_SEED"`
	LogSize     int    `env:"TRESORIA_LOG_SIZE"     envDefault:"100"`

	OTelEnabled  bool   `env:"TRESORIA_OTEL_ENABLED"`
	OTelEndpoint string `env:"TRESORIA_OTEL_ENDPOINT"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Env from the process environment.
func Load() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}

// GameConfig resolves the preset in registry and applies the board size,
// strategy override and seed.
func (e Env) GameConfig(registry *gamedata.PresetRegistry) (game.Config, error) {
	preset, err := registry.Lookup(e.Preset)
	if err != nil {
		return game.Config{}, err
	}
	cfg, err := game.ConfigFromPreset(preset, e.BoardWidth, e.BoardHeight)
	if err != nil {
		return game.Config{}, err
	}
	if e.Strategy != "" {
		s, ok := world.ParseStrategy(e.Strategy)
		if !ok {
			return game.Config{}, fmt.Errorf("%w: unknown strategy %q", game.ErrInvalidConfig, e.Strategy)
		}
		cfg.Strategy = s
	}
	cfg.Seed = e.Seed
	return cfg, cfg.Validate()
}

// Telemetry returns the tracing options.
func (e Env) Telemetry() telemetry.Options {
	return telemetry.Options{Enabled: e.OTelEnabled, Endpoint: e.OTelEndpoint}
}

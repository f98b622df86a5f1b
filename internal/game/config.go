package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/Phoemerrion/tresoria/internal/entity"
	"github.com/Phoemerrion/tresoria/internal/gamedata"
	"github.com/Phoemerrion/tresoria/internal/world"
)

// ErrInvalidConfig is returned by New when the configuration cannot
// produce a playable board.
var ErrInvalidConfig = errors.New("invalid config")

const (
	// DefaultWidth and DefaultHeight are the board dimensions used when
	// none are configured.
	DefaultWidth  = 30
	DefaultHeight = 15

	// DefaultMonsterDensity is the share of board cells holding a monster.
	DefaultMonsterDensity = 0.05
)

// Config holds game configuration options.
type Config struct {
	Width  int
	Height int

	// Passes are the terrain passes, applied in order.
	Passes []world.Pass
	// Strategy selects how terrain regions grow.
	Strategy world.Strategy
	// Diagonals lets random-walk growth step diagonally.
	Diagonals bool

	// MonsterDensity is the share of board cells holding a monster.
	MonsterDensity float64

	// PlayerStats are the stats the player starts every game with.
	PlayerStats entity.Stats

	// Seed for random number generation when New is given no source.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// DefaultConfig returns the classic 30x15 configuration.
func DefaultConfig() Config {
	return Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Passes:         world.ClassicPasses(),
		Strategy:       world.RandomWalk,
		MonsterDensity: DefaultMonsterDensity,
		PlayerStats:    entity.DefaultStats(),
	}
}

// ConfigFromPreset builds a configuration from a generation preset.
// Non-positive dimensions fall back to the defaults.
func ConfigFromPreset(p *gamedata.PresetDef, width, height int) (Config, error) {
	passes, err := p.TerrainPasses()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	strategy, err := p.TerrainStrategy()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg := DefaultConfig()
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	cfg.Passes = passes
	cfg.Strategy = strategy
	cfg.MonsterDensity = p.MonsterDensity
	return cfg, nil
}

// MonsterCount returns floor(width * height * density).
func (c Config) MonsterCount() int {
	return int(math.Floor(float64(c.Width*c.Height) * c.MonsterDensity))
}

// Validate reports the first configuration error, wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: board size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	for i, p := range c.Passes {
		if !p.Texture.IsObstacle() {
			return fmt.Errorf("%w: pass %d paints %s", ErrInvalidConfig, i, p.Texture)
		}
		if p.Fraction < 0 || p.Fraction > 1 {
			return fmt.Errorf("%w: pass %d fraction %v outside [0,1]", ErrInvalidConfig, i, p.Fraction)
		}
	}
	if c.Strategy.String() == "unknown" {
		return fmt.Errorf("%w: unknown strategy %d", ErrInvalidConfig, int(c.Strategy))
	}
	if c.MonsterDensity < 0 || c.MonsterDensity >= 1 {
		return fmt.Errorf("%w: monster density %v outside [0,1)", ErrInvalidConfig, c.MonsterDensity)
	}
	if need := c.MonsterCount() + 2; need > c.Width*c.Height {
		return fmt.Errorf("%w: %d entities do not fit on %d cells", ErrInvalidConfig, need, c.Width*c.Height)
	}
	s := c.PlayerStats
	if s.MaxHealth <= 0 || s.Health <= 0 || s.Health > s.MaxHealth || s.Strength < 0 {
		return fmt.Errorf("%w: player stats %+v", ErrInvalidConfig, s)
	}
	return nil
}

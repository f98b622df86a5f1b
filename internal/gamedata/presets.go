package gamedata

import (
	"errors"
	"fmt"

	"github.com/Phoemerrion/tresoria/internal/world"
)

// DefaultPresetID is the preset used when none is configured.
const DefaultPresetID = "classic"

// PassDef is one terrain pass as stored in presets.json.
type PassDef struct {
	Texture  string  `json:"texture"`  // "water" or "rock"
	Fraction float64 `json:"fraction"` // share of the board area
}

// PresetDef defines a generation preset loaded from JSON.
type PresetDef struct {
	ID             string    `json:"id"`             // Unique identifier (e.g., "classic")
	Name           string    `json:"name"`           // Display name
	Description    string    `json:"description"`    // One-line summary
	Strategy       string    `json:"strategy"`       // "walk" or "scatter"
	MonsterDensity float64   `json:"monsterDensity"` // monsters per board cell
	Passes         []PassDef `json:"passes"`         // terrain passes, in order
}

// TerrainPasses converts the pass definitions to world passes.
func (p *PresetDef) TerrainPasses() ([]world.Pass, error) {
	passes := make([]world.Pass, 0, len(p.Passes))
	for i, def := range p.Passes {
		tex, ok := world.ParseTexture(def.Texture)
		if !ok || !tex.IsObstacle() {
			return nil, fmt.Errorf("preset %s pass %d: invalid texture %q", p.ID, i, def.Texture)
		}
		if def.Fraction < 0 || def.Fraction > 1 {
			return nil, fmt.Errorf("preset %s pass %d: fraction %v outside [0,1]", p.ID, i, def.Fraction)
		}
		passes = append(passes, world.Pass{Texture: tex, Fraction: def.Fraction})
	}
	return passes, nil
}

// TerrainStrategy returns the growth strategy of the preset.
func (p *PresetDef) TerrainStrategy() (world.Strategy, error) {
	s, ok := world.ParseStrategy(p.Strategy)
	if !ok {
		return world.RandomWalk, fmt.Errorf("preset %s: unknown strategy %q", p.ID, p.Strategy)
	}
	return s, nil
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

// Validate checks every preset for usable passes and strategy.
func (f *PresetsFile) Validate() error {
	if len(f.Presets) == 0 {
		return errors.New("no presets defined")
	}
	seen := make(map[string]bool, len(f.Presets))
	for i := range f.Presets {
		p := &f.Presets[i]
		if p.ID == "" {
			return fmt.Errorf("preset %d has no id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate preset id %q", p.ID)
		}
		seen[p.ID] = true
		if _, err := p.TerrainPasses(); err != nil {
			return err
		}
		if _, err := p.TerrainStrategy(); err != nil {
			return err
		}
		if p.MonsterDensity < 0 || p.MonsterDensity >= 1 {
			return fmt.Errorf("preset %s: monster density %v outside [0,1)", p.ID, p.MonsterDensity)
		}
	}
	return nil
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]PresetDef, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}

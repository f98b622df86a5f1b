package gamedata

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned when a preset id is not in the registry.
var ErrUnknownPreset = errors.New("unknown preset")

// PresetRegistry holds loaded presets and provides lookup utilities.
type PresetRegistry struct {
	presets map[string]*PresetDef
	all     []PresetDef
}

// NewPresetRegistry creates a registry from loaded preset definitions.
func NewPresetRegistry(presets []PresetDef) *PresetRegistry {
	registry := &PresetRegistry{
		presets: make(map[string]*PresetDef, len(presets)),
		all:     presets,
	}
	for i := range presets {
		registry.presets[presets[i].ID] = &presets[i]
	}
	return registry
}

// LoadPresetRegistry loads and creates a registry from the embedded presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	return NewPresetRegistry(presets), nil
}

// MustLoadPresetRegistry loads a registry, panicking on error.
func MustLoadPresetRegistry() *PresetRegistry {
	registry, err := LoadPresetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *PresetRegistry) GetByID(id string) *PresetDef {
	return r.presets[id]
}

// Lookup returns the preset with the given ID. An empty id selects
// DefaultPresetID.
func (r *PresetRegistry) Lookup(id string) (*PresetDef, error) {
	if id == "" {
		id = DefaultPresetID
	}
	p := r.presets[id]
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
	}
	return p, nil
}

// All returns all preset definitions.
func (r *PresetRegistry) All() []PresetDef {
	return r.all
}

// Count returns the number of presets in the registry.
func (r *PresetRegistry) Count() int {
	return len(r.all)
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Simulation holds all configuration for the stat simulation.
type Simulation struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Tick loop
	TickInterval time.Duration `yaml:"tick_interval"`
	Ticks        int           `yaml:"ticks"` // 0 = run until cancelled

	Entities []EntityConfig `yaml:"entities"`
}

// EntityConfig describes one simulated owner of stats (a player, an NPC).
type EntityConfig struct {
	Name  string       `yaml:"name"`
	Stats []StatConfig `yaml:"stats"`
}

// StatConfig describes a bounded stat and its effects.
// If Value is omitted the stat starts at Max.
type StatConfig struct {
	Name    string         `yaml:"name"`
	Value   *float64       `yaml:"value"`
	Max     float64        `yaml:"max"`
	Min     float64        `yaml:"min"`
	Effects []EffectConfig `yaml:"effects"`
}

// EffectConfig describes one effect registered on a stat.
// Type must name an effect from the effect catalog.
type EffectConfig struct {
	Type        string            `yaml:"type"`
	Params      map[string]string `yaml:"params"`
	AuxModifier float64           `yaml:"aux_modifier"`
	Active      *bool             `yaml:"active"` // default: true
	ID          *int              `yaml:"id"`     // default: assigned on registration
}

// IsActive returns the configured active flag, true when omitted.
func (e EffectConfig) IsActive() bool {
	return e.Active == nil || *e.Active
}

// DefaultSimulation returns Simulation config with a single demo entity.
func DefaultSimulation() Simulation {
	return Simulation{
		LogLevel:     "info",
		TickInterval: time.Second,
		Ticks:        10,
		Entities: []EntityConfig{
			{
				Name: "hero",
				Stats: []StatConfig{
					{
						Name: "health",
						Max:  100,
						Min:  0,
						Effects: []EffectConfig{
							{Type: "Regen", Params: map[string]string{"percent": "2", "max": "100"}},
							{Type: "Drain", Params: map[string]string{"amount": "5"}, AuxModifier: 1},
						},
					},
					{
						Name: "mana",
						Max:  50,
						Min:  0,
						Effects: []EffectConfig{
							{Type: "Add", Params: map[string]string{"amount": "1"}},
						},
					},
				},
			},
		},
	}
}

// LoadSimulation loads simulation config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulation(path string) (Simulation, error) {
	cfg := DefaultSimulation()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

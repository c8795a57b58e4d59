// Package sim drives stats built from config through a tick loop.
package sim

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/dynstat/internal/config"
	"github.com/udisondev/dynstat/internal/effect"
	"github.com/udisondev/dynstat/internal/stat"
)

// Entity is a named owner of stats (a player, an NPC).
// Not safe for concurrent use: one goroutine ticks and reads an entity.
type Entity struct {
	name  string
	order []string
	stats map[string]*stat.Stat
	ticks int
}

// NewEntity creates an entity without stats.
func NewEntity(name string) *Entity {
	return &Entity{
		name:  name,
		stats: make(map[string]*stat.Stat),
	}
}

// Name returns the entity name.
func (e *Entity) Name() string { return e.name }

// Ticks returns the number of ticks processed so far.
func (e *Entity) Ticks() int { return e.ticks }

// AddStat attaches s under name. Returns error if the name is taken.
func (e *Entity) AddStat(name string, s *stat.Stat) error {
	if _, ok := e.stats[name]; ok {
		return fmt.Errorf("entity %s: duplicate stat %s", e.name, name)
	}
	e.stats[name] = s
	e.order = append(e.order, name)
	return nil
}

// Stat returns the stat registered under name.
func (e *Entity) Stat(name string) (*stat.Stat, bool) {
	s, ok := e.stats[name]
	return s, ok
}

// Tick processes one tick on every stat in the order they were added.
func (e *Entity) Tick() {
	e.ticks++
	for _, name := range e.order {
		s := e.stats[name]
		s.ProcessTick()

		slog.Debug("stat tick",
			"entity", e.name,
			"stat", name,
			"tick", e.ticks,
			"value", s.Value(),
			"atMax", s.IsAtMax(),
			"atMin", s.IsAtMin())
	}
}

// Snapshot returns the current value of every stat.
func (e *Entity) Snapshot() map[string]float64 {
	result := make(map[string]float64, len(e.stats))
	for name, s := range e.stats {
		result[name] = s.Value()
	}
	return result
}

// Build creates entities from config, registering effects through the
// effect catalog in config order.
func Build(cfg config.Simulation) ([]*Entity, error) {
	entities := make([]*Entity, 0, len(cfg.Entities))

	for _, ec := range cfg.Entities {
		ent := NewEntity(ec.Name)

		for _, sc := range ec.Stats {
			s, err := buildStat(sc)
			if err != nil {
				return nil, fmt.Errorf("entity %s: stat %s: %w", ec.Name, sc.Name, err)
			}
			if err := ent.AddStat(sc.Name, s); err != nil {
				return nil, err
			}
		}

		slog.Info("entity built", "entity", ent.name, "stats", len(ent.order))
		entities = append(entities, ent)
	}

	return entities, nil
}

func buildStat(sc config.StatConfig) (*stat.Stat, error) {
	var s *stat.Stat
	if sc.Value != nil {
		s = stat.New(*sc.Value, sc.Max, sc.Min)
	} else {
		s = stat.NewFull(sc.Max, sc.Min)
	}

	for i, ec := range sc.Effects {
		fn, err := effect.Create(ec.Type, ec.Params)
		if err != nil {
			return nil, fmt.Errorf("effect #%d: %w", i, err)
		}

		id := stat.NoID
		if ec.ID != nil {
			id = *ec.ID
		}

		assigned := s.RegisterEffect(stat.NewEffectWithID(fn, ec.AuxModifier, ec.IsActive(), id))
		slog.Debug("effect registered",
			"type", ec.Type,
			"id", assigned,
			"active", ec.IsActive(),
			"auxModifier", ec.AuxModifier)
	}

	return s, nil
}

// Package stat implements a bounded numeric stat (health, mana, stamina)
// with an ordered list of toggleable effects applied once per tick.
//
// A Stat is not safe for concurrent use. The owner (usually a single
// simulation goroutine) must serialize access.
package stat

import (
	"math"
	"slices"
)

// Stat holds a value clamped to [min, max] and the effects that adjust it.
type Stat struct {
	value float64
	max   float64
	min   float64

	effects []Effect
}

// New creates a Stat with the given current value and bounds.
// Bounds are not validated; value is stored as given.
func New(value, max, min float64) *Stat {
	return &Stat{
		value:   value,
		max:     max,
		min:     min,
		effects: make([]Effect, 0, 4),
	}
}

// NewFull creates a Stat that starts at its maximum.
func NewFull(max, min float64) *Stat {
	return New(max, max, min)
}

// Value returns the current value.
func (s *Stat) Value() float64 { return s.value }

// Rounded returns the current value rounded half away from zero.
func (s *Stat) Rounded() int { return int(math.Round(s.value)) }

// Max returns the upper bound.
func (s *Stat) Max() float64 { return s.max }

// Min returns the lower bound.
func (s *Stat) Min() float64 { return s.min }

// IsAtMax reports whether the value reached the upper bound.
func (s *Stat) IsAtMax() bool { return s.value >= s.max }

// IsAtMin reports whether the value reached the lower bound.
func (s *Stat) IsAtMin() bool { return s.value <= s.min }

// SetValue stores v clamped to [min, max].
// The max bound is checked first, which decides the result when min > max.
func (s *Stat) SetValue(v float64) {
	s.value = s.clamp(v)
}

// AddValue adds delta to the current value.
func (s *Stat) AddValue(delta float64) {
	s.SetValue(s.value + delta)
}

// SubValue subtracts delta from the current value.
func (s *Stat) SubValue(delta float64) {
	s.SetValue(s.value - delta)
}

func (s *Stat) clamp(v float64) float64 {
	if v > s.max {
		return s.max
	}
	if v < s.min {
		return s.min
	}
	return v
}

// EffectCount returns the number of registered effects.
func (s *Stat) EffectCount() int { return len(s.effects) }

// HasAnyEffect reports whether at least one effect is registered.
func (s *Stat) HasAnyEffect() bool { return len(s.effects) > 0 }

// Effects returns a copy of the registered effects in insertion order.
func (s *Stat) Effects() []Effect {
	result := make([]Effect, len(s.effects))
	copy(result, s.effects)
	return result
}

// FindEffectByID returns the first effect with the given id.
// Duplicate ids are not rejected at registration, so later ones are shadowed.
func (s *Stat) FindEffectByID(id int) (Effect, bool) {
	for _, e := range s.effects {
		if e.ID == id {
			return e, true
		}
	}
	return Effect{}, false
}

// HasEffectWithID reports whether an effect with the given id is registered.
func (s *Stat) HasEffectWithID(id int) bool {
	_, ok := s.FindEffectByID(id)
	return ok
}

// RegisterEffect appends e to the effect list and returns its id.
//
// An effect with NoID gets EffectCount()+1. Ids are derived from the current
// count, not from a counter, so after a removal a new effect can receive an
// id that is already taken.
func (s *Stat) RegisterEffect(e Effect) int {
	if e.ID == NoID {
		e.ID = len(s.effects) + 1
	}
	s.effects = append(s.effects, e)
	return e.ID
}

// RemoveEffectAt removes the selected effect. Out of range is a no-op.
func (s *Stat) RemoveEffectAt(idx Index) {
	pos, ok := idx.resolve(len(s.effects))
	if !ok {
		return
	}
	s.effects = slices.Delete(s.effects, pos, pos+1)
}

// SetEffectActive toggles the selected effect. Out of range is a no-op.
func (s *Stat) SetEffectActive(idx Index, active bool) {
	pos, ok := idx.resolve(len(s.effects))
	if !ok {
		return
	}
	s.effects[pos].Active = active
}

// EnableEffect activates the selected effect.
func (s *Stat) EnableEffect(idx Index) { s.SetEffectActive(idx, true) }

// DisableEffect deactivates the selected effect.
func (s *Stat) DisableEffect(idx Index) { s.SetEffectActive(idx, false) }

// SetEffectAuxModifier updates the auxiliary modifier of the selected effect.
// Out of range is a no-op.
func (s *Stat) SetEffectAuxModifier(idx Index, modifier float64) {
	pos, ok := idx.resolve(len(s.effects))
	if !ok {
		return
	}
	s.effects[pos].AuxModifier = modifier
}

// ProcessTick applies every active effect in insertion order.
// The value is clamped after each effect, so each one sees the result of
// the previous. A panicking effect aborts the tick; effects already applied
// stay applied.
func (s *Stat) ProcessTick() {
	for i := 0; i < len(s.effects); i++ {
		e := s.effects[i]
		if !e.Active {
			continue
		}
		s.SetValue(e.Apply(s.value, e.AuxModifier))
	}
}

// ApplyModifier is the multiplicative combination value*modifier.
// Effect functions may use it; ProcessTick never calls it.
func ApplyModifier(value, modifier float64) float64 {
	return value * modifier
}

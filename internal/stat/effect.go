package stat

// NoID marks an Effect that has not been given an id yet.
// RegisterEffect replaces it with the next sequential id.
const NoID = -3

// ApplyFunc computes a new candidate stat value from the current value and
// the effect's auxiliary modifier. It must be total over finite inputs.
// The result is clamped by the owning Stat, not by the function.
type ApplyFunc func(value, auxModifier float64) float64

// Effect is a toggleable modifier applied to a Stat on every tick.
//
// Fields carry no invariant between them. Once registered, change them
// through the owning Stat (SetEffectActive, SetEffectAuxModifier).
type Effect struct {
	Apply       ApplyFunc
	AuxModifier float64 // "negative multiplier modifier", passed to Apply
	Active      bool
	ID          int
}

// NewEffect creates an active effect without an id.
func NewEffect(fn ApplyFunc, auxModifier float64) Effect {
	return NewEffectWithID(fn, auxModifier, true, NoID)
}

// NewEffectActive creates an effect without an id and an explicit active flag.
func NewEffectActive(fn ApplyFunc, auxModifier float64, active bool) Effect {
	return NewEffectWithID(fn, auxModifier, active, NoID)
}

// NewEffectWithID creates an effect with explicit active flag and id.
func NewEffectWithID(fn ApplyFunc, auxModifier float64, active bool, id int) Effect {
	return Effect{
		Apply:       fn,
		AuxModifier: auxModifier,
		Active:      active,
		ID:          id,
	}
}

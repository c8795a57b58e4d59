package effect

import "github.com/udisondev/dynstat/internal/stat"

// NewAdd adds a flat amount every tick.
// Params: "amount" (float64, may be negative).
func NewAdd(params map[string]string) (stat.ApplyFunc, error) {
	amount, err := floatParam(params, "amount")
	if err != nil {
		return nil, err
	}
	return func(value, _ float64) float64 {
		return value + amount
	}, nil
}

// NewDrain subtracts amount scaled by the effect's aux modifier.
// Params: "amount" (float64).
//
// An aux modifier of 0 disables the drain without removing the effect.
func NewDrain(params map[string]string) (stat.ApplyFunc, error) {
	amount, err := floatParam(params, "amount")
	if err != nil {
		return nil, err
	}
	return func(value, aux float64) float64 {
		return value - amount*aux
	}, nil
}

// NewScale multiplies the value by the aux modifier. No params.
func NewScale(map[string]string) (stat.ApplyFunc, error) {
	return stat.ApplyModifier, nil
}

// NewRegen restores a percentage of a reference maximum every tick.
// Params: "percent" (float64), "max" (float64).
func NewRegen(params map[string]string) (stat.ApplyFunc, error) {
	percent, err := floatParam(params, "percent")
	if err != nil {
		return nil, err
	}
	limit, err := floatParam(params, "max")
	if err != nil {
		return nil, err
	}
	step := limit * percent / 100
	return func(value, _ float64) float64 {
		return value + step
	}, nil
}

// NewPin forces the value to a constant (clamped by the stat).
// Params: "value" (float64).
func NewPin(params map[string]string) (stat.ApplyFunc, error) {
	pinned, err := floatParam(params, "value")
	if err != nil {
		return nil, err
	}
	return func(float64, float64) float64 {
		return pinned
	}, nil
}

// Package effect is a catalog of named effect functions that can be
// instantiated from string parameters (config files, admin commands).
package effect

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"

	"github.com/udisondev/dynstat/internal/stat"
)

var (
	// ErrUnknownEffect is returned by Create for names that were never registered.
	ErrUnknownEffect = errors.New("unknown effect type")
	// ErrInvalidParam is returned when a parameter is missing or not a number.
	ErrInvalidParam = errors.New("invalid effect parameter")
)

// Factory builds an effect function from its parameters.
type Factory func(params map[string]string) (stat.ApplyFunc, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register registers a factory under name, replacing any previous one.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Create builds the effect function registered under name.
func Create(name string, params map[string]string) (stat.ApplyFunc, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEffect, name)
	}

	fn, err := factory(params)
	if err != nil {
		return nil, fmt.Errorf("creating effect %s: %w", name, err)
	}
	return fn, nil
}

// Names returns the registered effect names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// floatParam parses params[key] as a finite float64.
func floatParam(params map[string]string, key string) (float64, error) {
	raw, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q is required", ErrInvalidParam, key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q=%q: %v", ErrInvalidParam, key, raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q=%q: not finite", ErrInvalidParam, key, raw)
	}
	return v, nil
}

func init() {
	Register("Add", NewAdd)
	Register("Drain", NewDrain)
	Register("Scale", NewScale)
	Register("Regen", NewRegen)
	Register("Pin", NewPin)
}

package camera

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

var (
	// ErrUnknownMode is returned when a mode identifier has not been registered.
	ErrUnknownMode = errors.New("unknown camera mode")
	// ErrInvalidMode is returned when registering a mode without an ID or with a non-positive duration.
	ErrInvalidMode = errors.New("invalid camera mode")
)

// ModeRegistry maps mode identifiers to camera shots, preserving registration order.
// It is populated once and read afterwards; reads are safe from any goroutine.
type ModeRegistry struct {
	mu    *sync.RWMutex
	modes map[string]Mode
	order []string
}

// NewModeRegistry creates a registry holding the given modes.
// Invalid modes are skipped; use Register directly to observe the error.
//
// Parameters:
//   - modes: initial modes, registered in order
//
// Returns:
//   - *ModeRegistry: the populated registry
func NewModeRegistry(modes ...Mode) *ModeRegistry {
	r := &ModeRegistry{
		mu:    &sync.RWMutex{},
		modes: make(map[string]Mode, len(modes)),
	}
	for _, m := range modes {
		_ = r.Register(m)
	}
	return r
}

// NewDefaultModeRegistry creates a registry holding DefaultModes.
func NewDefaultModeRegistry() *ModeRegistry {
	return NewModeRegistry(DefaultModes()...)
}

// Register inserts a mode or overwrites the one with the same ID. An overwritten
// mode keeps its original position in IDs.
//
// Parameters:
//   - mode: the mode to store
//
// Returns:
//   - error: ErrInvalidMode if the ID is empty or the duration is not a positive finite number
func (r *ModeRegistry) Register(mode Mode) error {
	if mode.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidMode)
	}
	if !(mode.TransitionDuration > 0) || math.IsInf(mode.TransitionDuration, 0) {
		return fmt.Errorf("%w: %q has transition duration %v", ErrInvalidMode, mode.ID, mode.TransitionDuration)
	}
	if mode.DisplayName == "" {
		mode.DisplayName = mode.ID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.modes[mode.ID]; !ok {
		r.order = append(r.order, mode.ID)
	}
	r.modes[mode.ID] = mode
	return nil
}

// Get looks up a mode by identifier.
//
// Parameters:
//   - id: the mode identifier
//
// Returns:
//   - Mode: the registered mode
//   - error: ErrUnknownMode (wrapped with the id) if nothing is registered under id
func (r *ModeRegistry) Get(id string) (Mode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modes[id]
	if !ok {
		return Mode{}, fmt.Errorf("%w: %q", ErrUnknownMode, id)
	}
	return m, nil
}

// IDs returns the registered identifiers in insertion order.
func (r *ModeRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered modes.
func (r *ModeRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

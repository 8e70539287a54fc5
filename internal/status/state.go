// Package status tracks the session lifecycle state machine.
package status

import (
	"fmt"
	"slices"
	"sync"
)

// State represents a session runtime state.
type State string

const (
	Booting      State = "BOOTING"
	AuthRequired State = "AUTH_REQUIRED"
	Pairing      State = "PAIRING"
	Connecting   State = "CONNECTING"
	Connected    State = "CONNECTED"
	Disconnected State = "DISCONNECTED"
	LoggedOut    State = "LOGGED_OUT"
)

// validTransitions defines allowed state transitions. A remote-initiated
// logout may arrive in any live state, hence LoggedOut is reachable from all
// connected/disconnected states.
var validTransitions = map[State][]State{
	Booting:      {AuthRequired, Connecting},
	AuthRequired: {Pairing, Connecting},
	Pairing:      {Connected, Connecting, AuthRequired},
	Connecting:   {Connected, Disconnected, AuthRequired, LoggedOut},
	Connected:    {Disconnected, LoggedOut},
	Disconnected: {Connecting, Connected, LoggedOut},
	LoggedOut:    {AuthRequired, Pairing},
}

// Machine tracks and enforces session state transitions.
type Machine struct {
	mu      sync.RWMutex
	current State
}

// NewMachine creates a state machine starting in Booting.
func NewMachine() *Machine {
	return &Machine{current: Booting}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Transition attempts to move to a new state. Returns an error if the
// transition is invalid; no-op transitions to the current state succeed.
func (m *Machine) Transition(to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if to == m.current {
		return nil
	}
	if !slices.Contains(validTransitions[m.current], to) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, to)
	}
	m.current = to
	return nil
}

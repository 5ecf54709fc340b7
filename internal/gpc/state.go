// Package gpc owns the universal opt-out signal state: a persisted boolean
// that controls whether the Sec-GPC header is attached to traffic.
//
// GPC is legally recognized under the Minnesota Consumer Data Privacy Act
// and several other state privacy statutes.
package gpc

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Store persists the signal flag across restarts.
type Store interface {
	// GPCEnabled returns the persisted flag; found is false when no value
	// was ever stored.
	GPCEnabled() (enabled, found bool, err error)
	// SetGPCEnabled persists the flag.
	SetGPCEnabled(enabled bool) error
}

// State is the process-wide signal state. It is initialized once from the
// store at startup and mutated only through Toggle, so message handlers
// read a single owned value rather than ambient globals.
type State struct {
	mu      sync.RWMutex
	store   Store
	enabled bool
}

// NewState loads the persisted flag, falling back to defaultEnabled when
// nothing was stored yet.
func NewState(store Store, defaultEnabled bool) (*State, error) {
	enabled, found, err := store.GPCEnabled()
	if err != nil {
		return nil, err
	}

	if !found {
		enabled = defaultEnabled
		if err := store.SetGPCEnabled(enabled); err != nil {
			return nil, err
		}
	}

	log.Info().Bool("enabled", enabled).Msg("gpc signal state loaded")

	return &State{store: store, enabled: enabled}, nil
}

// Enabled reports whether the signal is currently on.
func (s *State) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.enabled
}

// Toggle flips the flag, persists it, and returns the new value.
func (s *State) Toggle() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := !s.enabled
	if err := s.store.SetGPCEnabled(next); err != nil {
		return s.enabled, err
	}

	s.enabled = next

	log.Info().Bool("enabled", next).Msg("gpc signal toggled")

	return next, nil
}

package machine

import (
	"errors"
	"fmt"

	"github.com/lockstep-sh/stowctl/internal/machine/internal/core"
	"github.com/lockstep-sh/stowctl/pkg/log"
)

// ErrIllegalTransition is returned when the requested transition is not legal
// from the current state. The handle that comes back with it is the original,
// untouched: no exit, no entry, no counter or timestamp change happened.
var ErrIllegalTransition = errors.New("illegal transition")

// StateStored and StateReady are the stable labels reported by Name.
const (
	StateStored = "stored"
	StateReady  = "ready"
)

type tag int

const (
	tagStored tag = iota
	tagReady
)

// State is the unified handle over the machine's current state. Exactly one
// live handle represents the machine at any time: a successful transition
// consumes the old handle and returns a new one, and a rejected transition
// returns the same handle. Using a consumed handle panics.
type State struct {
	tag      tag
	stored   Stored
	ready    Ready
	consumed bool
}

// Initial returns the machine in its starting state: stored, ready count zero.
func Initial() *State {
	return &State{
		tag:    tagStored,
		stored: enterStored(core.StoredInputs{ReadyCount: 0}),
	}
}

// SetLogger installs the logger used for transition diagnostics.
func SetLogger(l log.Logger) {
	core.SetLogger(l)
}

// Name reports a stable label for the current state without consuming the
// handle.
func (s *State) Name() string {
	s.check()
	if s.tag == tagReady {
		return StateReady
	}
	return StateStored
}

// ReadyCount reports how many times the machine has become ready, without
// consuming the handle.
func (s *State) ReadyCount() uint64 {
	s.check()
	if s.tag == tagReady {
		return s.ready.ReadyCount()
	}
	return s.stored.ReadyCount()
}

// Advance moves the machine from stored to ready. From any other state the
// request is rejected before any state is touched, and the original handle is
// returned together with ErrIllegalTransition.
func (s *State) Advance() (*State, error) {
	s.check()
	if s.tag != tagStored {
		return s, fmt.Errorf("%w: cannot advance while %s", ErrIllegalTransition, s.Name())
	}
	s.consumed = true
	return s.stored.Advance().State(), nil
}

// Retreat moves the machine from ready back to stored. From any other state
// the request is rejected before any state is touched, and the original
// handle is returned together with ErrIllegalTransition.
func (s *State) Retreat() (*State, error) {
	s.check()
	if s.tag != tagReady {
		return s, fmt.Errorf("%w: cannot retreat while %s", ErrIllegalTransition, s.Name())
	}
	s.consumed = true
	return s.ready.Retreat().State(), nil
}

func (s *State) check() {
	if s.consumed {
		panic("machine: use of consumed state handle")
	}
}

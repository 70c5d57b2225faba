package machine

import "github.com/lockstep-sh/stowctl/internal/machine/internal/core"

// Stored wraps the sealed stored-state record. The wrapper grants exactly two
// capabilities: reading the counter and the one legal outgoing transition.
type Stored struct {
	inner *core.Stored
}

func enterStored(in core.StoredInputs) Stored {
	return Stored{inner: core.EnterStored(in)}
}

// ReadyCount reports the counter without consuming the state.
func (s Stored) ReadyCount() uint64 {
	return s.inner.ReadyCount()
}

// StoredResult is the envelope for transitions leaving the stored state. The
// only state reachable from stored is ready, so that is its only variant.
type StoredResult struct {
	ready Ready
}

// State converts the envelope into a unified handle. The mapping is total:
// each variant corresponds to exactly one handle tag.
func (r StoredResult) State() *State {
	return &State{tag: tagReady, ready: r.ready}
}

// Advance leaves the stored state and enters ready. The counter crosses this
// edge unchanged; entering ready is what increments it.
func (s Stored) Advance() StoredResult {
	out := s.inner.Exit()

	return StoredResult{
		ready: enterReady(core.ReadyInputs{ReadyCount: out.ReadyCount}),
	}
}

package machine

import "github.com/lockstep-sh/stowctl/internal/machine/internal/core"

// Ready wraps the sealed ready-state record. The wrapper grants exactly two
// capabilities: reading the counter and the one legal outgoing transition.
type Ready struct {
	inner *core.Ready
}

func enterReady(in core.ReadyInputs) Ready {
	return Ready{inner: core.EnterReady(in)}
}

// ReadyCount reports the counter without consuming the state.
func (r Ready) ReadyCount() uint64 {
	return r.inner.ReadyCount()
}

// ReadyResult is the envelope for transitions leaving the ready state. The
// only state reachable from ready is stored, so that is its only variant.
type ReadyResult struct {
	stored Stored
}

// State converts the envelope into a unified handle. The mapping is total:
// each variant corresponds to exactly one handle tag.
func (r ReadyResult) State() *State {
	return &State{tag: tagStored, stored: r.stored}
}

// Retreat leaves the ready state and returns to stored. The counter crosses
// this edge unchanged.
func (r Ready) Retreat() ReadyResult {
	out := r.inner.Exit()

	return ReadyResult{
		stored: enterStored(core.StoredInputs{ReadyCount: out.ReadyCount}),
	}
}

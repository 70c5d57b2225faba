package core

import (
	"time"

	"github.com/lockstep-sh/stowctl/pkg/log"
)

// Ready is the active state of the payload.
type Ready struct {
	readyCount uint64
	enteredAt  time.Time
	exited     bool
}

// ReadyInputs carries everything required to enter the ready state.
type ReadyInputs struct {
	ReadyCount uint64
}

// ReadyOutputs carries everything the ready state yields when it is left.
type ReadyOutputs struct {
	ReadyCount uint64
}

// EnterReady constructs a ready state and stamps its entry time. The ready
// count increments here and only here, so it counts entries into ready no
// matter which state the machine came from.
func EnterReady(in ReadyInputs) *Ready {
	return &Ready{
		readyCount: in.ReadyCount + 1,
		enteredAt:  time.Now(),
	}
}

// Exit consumes the state and yields its outputs, observing how long the
// payload was resident. It must be called exactly once per instance; a second
// call breaks the transition contract and panics.
func (r *Ready) Exit() ReadyOutputs {
	if r.exited {
		panic("core: ready state exited twice")
	}
	r.exited = true

	logger.Info("leaving ready state",
		log.Duration("residency", time.Since(r.enteredAt)),
	)

	return ReadyOutputs{ReadyCount: r.readyCount}
}

// ReadyCount reports the counter without consuming the state.
func (r *Ready) ReadyCount() uint64 {
	return r.readyCount
}

package core

import (
	"time"

	"github.com/lockstep-sh/stowctl/pkg/log"
)

// Stored is the resting state of the payload.
type Stored struct {
	readyCount uint64
	enteredAt  time.Time
	exited     bool
}

// StoredInputs carries everything required to enter the stored state.
type StoredInputs struct {
	ReadyCount uint64
}

// StoredOutputs carries everything the stored state yields when it is left.
type StoredOutputs struct {
	ReadyCount uint64
}

// EnterStored constructs a stored state and stamps its entry time. Entering
// stored never changes the ready count.
func EnterStored(in StoredInputs) *Stored {
	return &Stored{
		readyCount: in.ReadyCount,
		enteredAt:  time.Now(),
	}
}

// Exit consumes the state and yields its outputs, observing how long the
// payload was resident. It must be called exactly once per instance; a second
// call breaks the transition contract and panics.
func (s *Stored) Exit() StoredOutputs {
	if s.exited {
		panic("core: stored state exited twice")
	}
	s.exited = true

	logger.Info("leaving stored state",
		log.Duration("residency", time.Since(s.enteredAt)),
	)

	return StoredOutputs{ReadyCount: s.readyCount}
}

// ReadyCount reports the counter without consuming the state.
func (s *Stored) ReadyCount() uint64 {
	return s.readyCount
}

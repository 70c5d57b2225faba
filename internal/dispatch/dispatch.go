// Package dispatch serializes textual commands into operations on the one
// live machine handle. Requests travel through a single-slot channel and are
// applied one at a time by a single goroutine, so at most one transition
// attempt is ever in flight.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/lockstep-sh/stowctl/internal/machine"
	"github.com/lockstep-sh/stowctl/pkg/log"
)

// Op identifies a requested machine operation.
type Op int

const (
	// OpReady asks the machine to advance into the ready state.
	OpReady Op = iota
	// OpStore asks the machine to retreat into the stored state.
	OpStore
	// opQuery reports the current state name without transitioning.
	opQuery
)

// ParseOp maps command text to an operation. Only "ready" and "store" are
// accepted; anything else is rejected here and never reaches the machine.
func ParseOp(text string) (Op, bool) {
	switch text {
	case "ready":
		return OpReady, true
	case "store":
		return OpStore, true
	}
	return 0, false
}

// Command is a single request against the machine. Reply must be buffered so
// the loop never blocks on a caller that has gone away.
type Command struct {
	Op    Op
	Reply chan string
}

// ErrLoopClosed is returned by Submit when the loop shut down before
// delivering a reply.
var ErrLoopClosed = errors.New("dispatch loop closed")

// Loop owns the machine handle and applies commands in arrival order, with
// each reply delivered before the next command is taken.
type Loop struct {
	requests chan Command
	state    *machine.State
	logger   log.Logger
	done     chan struct{}
}

// NewLoop creates a loop owning a machine in its initial state.
func NewLoop(logger log.Logger) *Loop {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Loop{
		requests: make(chan Command, 1),
		state:    machine.Initial(),
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Run applies commands until the context is canceled. It is the only place
// the handle is touched, so no transition ever observes another mid-flight.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-l.requests:
			cmd.Reply <- l.apply(cmd.Op)
		}
	}
}

// Submit sends one command and waits for its reply.
func (l *Loop) Submit(ctx context.Context, op Op) (string, error) {
	cmd := Command{Op: op, Reply: make(chan string, 1)}

	select {
	case l.requests <- cmd:
	case <-l.done:
		return "", ErrLoopClosed
	case <-ctx.Done():
		return "", ctx.Err()
	}

	select {
	case reply := <-cmd.Reply:
		return reply, nil
	case <-l.done:
		// The loop may have answered in the same instant it shut down.
		select {
		case reply := <-cmd.Reply:
			return reply, nil
		default:
			return "", ErrLoopClosed
		}
	}
}

// StateName reports the current state through the same serialized channel, so
// it never aliases the handle.
func (l *Loop) StateName(ctx context.Context) (string, error) {
	return l.Submit(ctx, opQuery)
}

func (l *Loop) apply(op Op) string {
	if op == opQuery {
		return l.state.Name()
	}

	var (
		next *machine.State
		err  error
	)
	switch op {
	case OpReady:
		next, err = l.state.Advance()
	case OpStore:
		next, err = l.state.Retreat()
	default:
		return fmt.Sprintf("Transition failed! Current state is %s.", l.state.Name())
	}

	// Success or rejection, the returned handle is the machine now.
	l.state = next

	if err != nil {
		l.logger.Warn("transition rejected",
			log.String("state", next.Name()),
			log.Err(err),
		)
		return fmt.Sprintf("Transition failed! Current state is %s.", next.Name())
	}

	l.logger.Info("transition applied",
		log.String("state", next.Name()),
		log.Uint64("ready_count", next.ReadyCount()),
	)
	return fmt.Sprintf("Transitioned to %s!", next.Name())
}

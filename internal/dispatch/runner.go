package dispatch

import (
	"context"
	"errors"
	"sync"
)

// Common runner errors.
var (
	ErrAlreadyRunning = errors.New("dispatch loop already running")
	ErrNotRunning     = errors.New("dispatch loop not running")
)

// Runner manages the loop's lifetime: one Start, one Stop.
type Runner struct {
	mu      sync.Mutex
	loop    *Loop
	cancel  context.CancelFunc
	running bool
	wg      sync.WaitGroup
}

// NewRunner creates a runner for the given loop.
func NewRunner(loop *Loop) *Runner {
	return &Runner{loop: loop}
}

// Start launches the loop in its own goroutine.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.running = true

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.loop.Run(ctx)
	}()
	return nil
}

// Stop cancels the loop and waits for it to finish.
func (r *Runner) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return ErrNotRunning
	}
	r.running = false
	cancel := r.cancel
	r.mu.Unlock()

	cancel()
	r.wg.Wait()
	return nil
}

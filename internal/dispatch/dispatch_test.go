package dispatch

import (
	"context"
	"errors"
	"testing"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		text   string
		wantOp Op
		wantOK bool
	}{
		{"ready", OpReady, true},
		{"store", OpStore, true},
		{"Ready", 0, false},
		{"launch", 0, false},
		{"", 0, false},
		{" ready", 0, false},
	}
	for _, tt := range tests {
		op, ok := ParseOp(tt.text)
		if ok != tt.wantOK {
			t.Errorf("ParseOp(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			continue
		}
		if ok && op != tt.wantOp {
			t.Errorf("ParseOp(%q) = %v, want %v", tt.text, op, tt.wantOp)
		}
	}
}

func startLoop(t *testing.T) (*Loop, context.Context) {
	t.Helper()
	loop := NewLoop(nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go loop.Run(ctx)
	return loop, ctx
}

func TestLoopScenario(t *testing.T) {
	loop, ctx := startLoop(t)

	steps := []struct {
		op   Op
		want string
	}{
		{OpStore, "Transition failed! Current state is stored."},
		{OpReady, "Transitioned to ready!"},
		{OpStore, "Transitioned to stored!"},
		{OpReady, "Transitioned to ready!"},
	}
	for i, step := range steps {
		got, err := loop.Submit(ctx, step.op)
		if err != nil {
			t.Fatalf("step %d: submit: %v", i, err)
		}
		if got != step.want {
			t.Fatalf("step %d: got %q, want %q", i, got, step.want)
		}
	}

	name, err := loop.StateName(ctx)
	if err != nil {
		t.Fatalf("state name: %v", err)
	}
	if name != "ready" {
		t.Fatalf("expected final state ready, got %q", name)
	}
}

func TestRepeatedRejectionLeavesStateAlone(t *testing.T) {
	loop, ctx := startLoop(t)

	for i := 0; i < 3; i++ {
		got, err := loop.Submit(ctx, OpStore)
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		if got != "Transition failed! Current state is stored." {
			t.Fatalf("attempt %d: got %q", i, got)
		}
	}

	name, err := loop.StateName(ctx)
	if err != nil {
		t.Fatalf("state name: %v", err)
	}
	if name != "stored" {
		t.Fatalf("expected state stored after rejections, got %q", name)
	}
}

func TestSubmitAfterShutdown(t *testing.T) {
	loop := NewLoop(nil)
	ctx, cancel := context.WithCancel(context.Background())
	go loop.Run(ctx)
	cancel()
	<-loop.done

	if _, err := loop.Submit(context.Background(), OpReady); !errors.Is(err, ErrLoopClosed) {
		t.Fatalf("expected ErrLoopClosed, got %v", err)
	}
}

func TestRunnerStartStop(t *testing.T) {
	loop := NewLoop(nil)
	runner := NewRunner(loop)

	if err := runner.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := runner.Start(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}

	if _, err := loop.StateName(context.Background()); err != nil {
		t.Fatalf("state name while running: %v", err)
	}

	if err := runner.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := runner.Stop(); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("expected ErrNotRunning, got %v", err)
	}

	if _, err := loop.Submit(context.Background(), OpReady); !errors.Is(err, ErrLoopClosed) {
		t.Fatalf("expected ErrLoopClosed after stop, got %v", err)
	}
}

package dispatch

import (
	"bytes"
	"strings"
	"testing"
)

func TestREPLSession(t *testing.T) {
	loop, ctx := startLoop(t)

	in := strings.NewReader("launch\n\nready\nstore\n")
	var out bytes.Buffer

	repl := NewREPL(loop, in, &out, "> ", nil)
	if err := repl.Run(ctx); err != nil {
		t.Fatalf("repl run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Please enter an operation: ready, store",
		"unknown command, try again",
		"Transitioned to ready!",
		"Transitioned to stored!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestREPLUnknownCommandNeverReachesLoop(t *testing.T) {
	loop, ctx := startLoop(t)

	in := strings.NewReader("fire\nabort\n")
	var out bytes.Buffer
	if err := NewREPL(loop, in, &out, "", nil).Run(ctx); err != nil {
		t.Fatalf("repl run: %v", err)
	}

	name, err := loop.StateName(ctx)
	if err != nil {
		t.Fatalf("state name: %v", err)
	}
	if name != "stored" {
		t.Fatalf("unknown commands must not transition; state is %q", name)
	}
	if n := strings.Count(out.String(), "unknown command, try again"); n != 2 {
		t.Fatalf("expected 2 rejections, got %d", n)
	}
}

func TestRunScript(t *testing.T) {
	loop, ctx := startLoop(t)

	var out bytes.Buffer
	repl := NewREPL(loop, strings.NewReader(""), &out, "", nil)

	if err := repl.RunScript(ctx, []string{"store", "ready", " store ", ""}); err != nil {
		t.Fatalf("run script: %v", err)
	}

	wantLines := []string{
		"Transition failed! Current state is stored.",
		"Transitioned to ready!",
		"Transitioned to stored!",
	}
	gotLines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(gotLines) != len(wantLines) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(wantLines), len(gotLines), out.String())
	}
	for i := range wantLines {
		if gotLines[i] != wantLines[i] {
			t.Errorf("line %d: got %q, want %q", i, gotLines[i], wantLines[i])
		}
	}
}

func TestRunScriptUnknownCommand(t *testing.T) {
	loop, ctx := startLoop(t)

	var out bytes.Buffer
	repl := NewREPL(loop, strings.NewReader(""), &out, "", nil)

	err := repl.RunScript(ctx, []string{"ready", "launch"})
	if err == nil || !strings.Contains(err.Error(), `unknown command "launch"`) {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

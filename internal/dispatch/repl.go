package dispatch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lockstep-sh/stowctl/pkg/log"
)

const opsHint = "Please enter an operation: ready, store"

// REPL reads textual commands and relays them to the loop one at a time. A
// response is written for every accepted command before the next line is read.
type REPL struct {
	loop   *Loop
	in     io.Reader
	out    io.Writer
	prompt string
	logger log.Logger
}

// NewREPL creates a REPL over the given streams.
func NewREPL(loop *Loop, in io.Reader, out io.Writer, prompt string, logger log.Logger) *REPL {
	if prompt == "" {
		prompt = "> "
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &REPL{loop: loop, in: in, out: out, prompt: prompt, logger: logger}
}

// Run prompts, reads, and answers until EOF or cancellation. Unknown commands
// are rejected locally and never reach the loop; blank lines are ignored.
func (r *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprintf(r.out, "%s\n%s", opsHint, r.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		op, ok := ParseOp(line)
		if !ok {
			fmt.Fprintln(r.out, "unknown command, try again")
			continue
		}

		reply, err := r.loop.Submit(ctx, op)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, reply)
	}
}

// RunScript executes a fixed command list, rendering the same responses as
// the interactive session. An unknown command aborts with an error rather
// than being skipped, since a script has no operator to retry.
func (r *REPL) RunScript(ctx context.Context, commands []string) error {
	for _, raw := range commands {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		op, ok := ParseOp(line)
		if !ok {
			return fmt.Errorf("unknown command %q", line)
		}

		reply, err := r.loop.Submit(ctx, op)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, reply)
	}
	return nil
}

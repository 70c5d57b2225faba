// Package stowctl provides an interactive console for a payload that moves
// between two operational states, "stored" and "ready".
//
// Example usage:
//
//	cfg := stowctl.DefaultConfig()
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := stowctl.Run(context.Background(), cfg); err != nil {
//	    log.Fatal(err)
//	}
package stowctl

import (
	"context"
	"os"

	"github.com/lockstep-sh/stowctl/internal/cliconfig"
	"github.com/lockstep-sh/stowctl/internal/dispatch"
	"github.com/lockstep-sh/stowctl/internal/machine"
	"github.com/lockstep-sh/stowctl/pkg/log"
)

// Config holds the configuration for the stowctl console.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// NewLogger builds the logger described by the configuration and applies its
// level process-wide.
func NewLogger(cfg Config) log.Logger {
	log.SetGlobalLevel(cfg.LogLevel)
	if cfg.LogFormat == cliconfig.LogFormatJSON {
		return log.NewJSONAdapter(os.Stderr)
	}
	return log.NewConsoleAdapter(os.Stderr)
}

// Run starts the dispatch loop and drives it from stdin, or from the
// configured command script when cfg.Exec is set. It blocks until the script
// completes, stdin reaches EOF, or the context is canceled.
func Run(ctx context.Context, cfg Config) error {
	logger := NewLogger(cfg)
	machine.SetLogger(logger)

	logger.Info("started operations")

	loop := dispatch.NewLoop(logger)
	runner := dispatch.NewRunner(loop)
	if err := runner.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = runner.Stop() }()

	repl := dispatch.NewREPL(loop, os.Stdin, os.Stdout, cfg.Prompt, logger)
	if len(cfg.Exec) > 0 {
		return repl.RunScript(ctx, cfg.Exec)
	}
	return repl.Run(ctx)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/lockstep-sh/stowctl"
	"github.com/lockstep-sh/stowctl/internal/cliconfig"
	"github.com/lockstep-sh/stowctl/pkg/log"
)

var longHelp = strings.TrimSpace(`
stowctl is an operator console for a payload that moves between two
operational states: "stored" and "ready".

Commands are read one per line:
  ready   arm the payload (stored -> ready)
  store   stow the payload (ready -> stored)

A transition that is not legal from the current state is rejected and the
state is left untouched. The ready count goes up every time the payload
becomes ready.
`)

var exampleUsage = strings.TrimSpace(`
  stowctl
  stowctl --log-level debug --log-format json
  stowctl --exec ready,store,ready
  stowctl --config $HOME/.stowctl/config.toml --watch-config
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var (
		cfgPath string
		execRaw string
	)

	cliLog := log.NewZerologAdapter()

	root := &cobra.Command{
		Use:     "stowctl",
		Short:   "Interactive console for the stored/ready payload machine",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.stowctl/config.toml),
			// then env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			cliconfig.ApplyEnvConfig(&cfg, changed)

			if execRaw != "" {
				cfg.Exec = splitCommands(execRaw)
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			if cfg.WatchConfig && cfgFile != "" {
				w := cliconfig.NewWatcher(cfgFile, func(fc cliconfig.FileConfig) {
					if fc.LogLevel != "" {
						log.SetGlobalLevel(fc.LogLevel)
					}
				}, cliLog)
				go w.Run(ctx)
			}

			errCh := make(chan error, 1)
			go func() { errCh <- stowctl.Run(ctx, cfg) }()

			select {
			case <-sigCh:
				cliLog.Info("received signal, stopping...")
				return nil
			case err := <-errCh:
				return err
			}
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.stowctl/config.toml)")
	root.Flags().StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "interactive prompt")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log output format (console, json)")
	root.Flags().StringVar(&execRaw, "exec", "", "comma-separated commands to run instead of the interactive session")
	root.Flags().BoolVar(&cfg.WatchConfig, "watch-config", cfg.WatchConfig, "reload log level when the config file changes")

	if err := root.Execute(); err != nil {
		cliLog.Error("stowctl", log.Err(err))
		os.Exit(1)
	}
}

func splitCommands(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

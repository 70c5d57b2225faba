package cliconfig

import (
	"os"
	"strconv"
)

// ApplyEnvConfig applies STOWCTL_* environment variables. Env values override
// file config but are overridden by explicitly-set flags (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("prompt", os.Getenv("STOWCTL_PROMPT"), &cfg.Prompt)
	s.setString("log-level", os.Getenv("STOWCTL_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv("STOWCTL_LOG_FORMAT"), &cfg.LogFormat)

	if v := os.Getenv("STOWCTL_WATCH_CONFIG"); v != "" && !changed["watch-config"] {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.WatchConfig = b
		}
	}
}

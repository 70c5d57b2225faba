package cliconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, `
prompt = "stow> "
log_level = "debug"
log_format = "json"
exec = ["ready", "store"]
watch_config = true
`)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Prompt != "stow> " || fc.LogLevel != "debug" || fc.LogFormat != "json" {
		t.Fatalf("unexpected config: %+v", fc)
	}
	if !reflect.DeepEqual(fc.Exec, []string{"ready", "store"}) {
		t.Fatalf("unexpected exec: %v", fc.Exec)
	}
	if fc.WatchConfig == nil || !*fc.WatchConfig {
		t.Fatalf("expected watch_config true, got %v", fc.WatchConfig)
	}
}

func TestLoadFileConfigBadTOML(t *testing.T) {
	path := writeConfig(t, "prompt = [unterminated")
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Prompt:      "stow> ",
				LogLevel:    "debug",
				LogFormat:   "json",
				Exec:        []string{"ready"},
				WatchConfig: &trueVal,
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				Prompt:      "stow> ",
				LogLevel:    "debug",
				LogFormat:   "json",
				Exec:        []string{"ready"},
				WatchConfig: true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Prompt:   "file> ",
				LogLevel: "error",
			},
			changed: map[string]bool{"prompt": true},
			initial: Config{Prompt: "flag> ", LogLevel: "info", LogFormat: LogFormatConsole},
			expected: Config{
				Prompt:    "flag> ", // unchanged because flag was set
				LogLevel:  "error",
				LogFormat: LogFormatConsole,
			},
		},
		{
			name:       "empty file leaves defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if !reflect.DeepEqual(cfg, tt.expected) {
				t.Fatalf("got %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

package cli

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/pathfinder/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
		check   func(t *testing.T, cfg Config)
	}{
		{
			name:    "full",
			content: "width = 20\nheight = 10\nalgorithm = \"Dijkstra\"\nspeed = 0\nlog_level = \"debug\"\n\n[server]\naddr = \":9000\"\n",
			check: func(t *testing.T, cfg Config) {
				want := Config{Width: 20, Height: 10, Algorithm: "Dijkstra", Speed: 0, LogLevel: "debug", Server: ServerConfig{Addr: ":9000"}}
				if cfg != want {
					t.Errorf("cfg = %+v, want %+v", cfg, want)
				}
			},
		},
		{
			name:    "partial keeps defaults",
			content: "speed = 40\n",
			check: func(t *testing.T, cfg Config) {
				want := DefaultConfig()
				want.Speed = 40
				if cfg != want {
					t.Errorf("cfg = %+v, want %+v", cfg, want)
				}
			},
		},
		{name: "unknown key", content: "colour = \"red\"\n", code: errors.ErrCodeInvalidInput},
		{name: "unknown nested key", content: "[server]\nport = 80\n", code: errors.ErrCodeInvalidInput},
		{name: "syntax error", content: "width = \n", code: errors.ErrCodeInvalidInput},
		{name: "bad width", content: "width = 101\n", code: errors.ErrCodeInvalidDimensions},
		{name: "bad speed", content: "speed = -1\n", code: errors.ErrCodeInvalidSpeed},
		{name: "bad algorithm", content: "algorithm = \"bfs\"\n", code: errors.ErrCodeUnknownAlgorithm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeFile(t, "config.toml", tt.content))
			if tt.code != "" {
				if errors.GetCode(err) != tt.code {
					t.Fatalf("err = %v, want %s", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := configFile()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "pathfinder", "config.toml"); got != want {
		t.Errorf("configFile() = %q, want %q", got, want)
	}

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)
	got, err = configFile()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".config", "pathfinder", "config.toml"); got != want {
		t.Errorf("configFile() = %q, want %q", got, want)
	}
}

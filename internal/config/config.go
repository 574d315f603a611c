// Package config loads and saves bunkmate preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all bunkmate configuration.
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Scenarios ScenariosConfig `toml:"scenarios"`
	Targets   TargetsConfig   `toml:"targets"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultTarget float64 `toml:"default_target"`
	Theme         string  `toml:"theme"`
}

// ScenariosConfig holds the what-if deltas evaluated by the scenarios
// command and the TUI. Order is preserved in output.
type ScenariosConfig struct {
	Deltas []int `toml:"deltas"`
}

// TargetsConfig holds the milestone targets shown by the targets command.
type TargetsConfig struct {
	Milestones []float64 `toml:"milestones"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultTarget: 75,
			Theme:         "flexoki-dark",
		},
		Scenarios: ScenariosConfig{
			Deltas: []int{5, 10, -3, -5},
		},
		Targets: TargetsConfig{
			Milestones: []float64{75, 80, 85, 90},
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bunkmate")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bunkmate")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

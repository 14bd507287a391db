package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of a single interpreter run. All fields
// are optional; zero values fall back to defaults.
type Config struct {
	// MaxDepth bounds evaluator recursion. Zero means DefaultMaxEvalDepth.
	MaxDepth int `yaml:"max_depth"`

	// Trace enables per-statement evaluation tracing.
	Trace bool `yaml:"trace"`

	// LogLevel selects the interpreter's own log verbosity:
	// "error", "warning", "info" or "debug".
	LogLevel string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{MaxDepth: DefaultMaxEvalDepth, LogLevel: "error"}
}

// Load reads a YAML config file. A missing file is not an error; the
// defaults are returned instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxEvalDepth
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "error"
	}
	return cfg, nil
}

// LoadForScript resolves the config for a script: an explicit path wins,
// otherwise an ash.yaml next to the script is used when present.
func LoadForScript(scriptPath, explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	return Load(filepath.Join(filepath.Dir(scriptPath), "ash.yaml"))
}

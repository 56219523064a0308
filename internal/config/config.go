// Package config loads nxncube settings and the persistent CLI state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// dirName is the per-user settings directory under $HOME.
const dirName = ".nxncube"

// Config holds user settings. Zero values are replaced by defaults.
type Config struct {
	DBPath        string `yaml:"db_path"`
	DefaultSize   int    `yaml:"default_size" validate:"min=1,max=64"`
	ScrambleMoves int    `yaml:"scramble_moves" validate:"min=0,max=10000"`
	VerifyWorkers int    `yaml:"verify_workers" validate:"min=1,max=256"`
}

var validate = validator.New()

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DefaultSize:   3,
		ScrambleMoves: 25,
		VerifyWorkers: 4,
	}
}

// Dir returns the settings directory, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, dirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads settings from path, then applies environment overrides
// (NXNCUBE_DB, NXNCUBE_SIZE) and validates the result. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("NXNCUBE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("NXNCUBE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NXNCUBE_SIZE=%q: %w", v, err)
		}
		cfg.DefaultSize = n
	}
	return nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ResolveDBPath returns cfg.DBPath, or the default database path inside the
// settings directory when it is unset.
func (cfg Config) ResolveDBPath() (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "nxncube.db"), nil
}

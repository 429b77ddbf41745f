package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the runtime settings for the registry tooling.
type Config struct {
	// DataDir is the root directory for databases and event logs.
	DataDir string `toml:"data_dir"`
	// Store selects the key-value backend: "memory", "bolt" or "leveldb".
	Store string `toml:"store"`
	// EventLog is the path of the JSON-lines notification sink. Empty means
	// stdout.
	EventLog string `toml:"event_log"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig(dataDir string) Config {
	return Config{
		DataDir:  dataDir,
		Store:    "bolt",
		LogLevel: "info",
	}
}

// ConfigPath returns the conventional config file location inside dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, "revshare.toml")
}

// LoadConfig reads and validates a TOML config file.
// Returns ErrConfigNotFound when the file does not exist.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, ErrConfigNotFound
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig(filepath.Dir(path))
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

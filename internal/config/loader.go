package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvLogLevel = "SNAKE_LOG_LEVEL"
	EnvLogFile  = "SNAKE_LOG_FILE"
	EnvSSHAddr  = "SNAKE_SSH_ADDR"
	EnvHostKey  = "SNAKE_HOST_KEY"
)

// Load loads the configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Values missing from a file keep their defaults. A .env file in the working
// directory is loaded first, then SNAKE_* environment variables are applied.
func Load(customPath string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: failed to load .env: %w", err)
	}

	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile resolves the YAML source following the search order.
func loadFile(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "snake.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// applyEnv overrides config values from the environment.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.Log.File = v
	}
	if v, ok := os.LookupEnv(EnvSSHAddr); ok {
		cfg.Server.Address = v
	}
	if v, ok := os.LookupEnv(EnvHostKey); ok {
		cfg.Server.HostKey = v
	}
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/mkpy/internal/foundation/errors"
)

// envFiles are loaded in order; earlier files and the real environment win.
var envFiles = []string{".env", ".env.local"}

// Load reads a YAML configuration file, expanding ${VAR} references first.
// Keys missing from the file keep their Default() value.
func Load(configPath string) (*Config, error) {
	LoadEnv()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "configuration file not found").
				Fatal().WithContext("path", configPath).Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			Fatal().WithContext("path", configPath).Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to parse config file").
			Fatal().WithContext("path", configPath).Build()
	}
	slog.Debug("Loaded configuration", slog.String("path", configPath))
	return cfg, nil
}

// Parse decodes YAML configuration content on top of the defaults.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadEnv loads variables from .env files without overriding the environment.
func LoadEnv() {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			slog.Warn("Failed to load env file", slog.String("path", name), slog.String("error", err.Error()))
			continue
		}
		slog.Debug("Loaded environment variables", slog.String("path", name))
	}
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).Build()
	}

	example := Default()
	example.Title = "My Project"
	example.BaseURL = "https://docs.example.com"

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// #nosec G306 -- configuration file is not secret
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).Build()
	}
	return nil
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration file at path, applies defaults, then
// environment overrides, and validates the result. An empty path loads the
// defaults alone.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("ASTFORGE_ROOT_TYPE"); val != "" {
		cfg.RootType = val
	}
	if val := os.Getenv("ASTFORGE_RETENTION_ANNOTATION"); val != "" {
		cfg.RetentionAnnotation = val
	}
	if val := os.Getenv("ASTFORGE_CLOSURE_MARKER"); val != "" {
		cfg.ClosureMarker = val
	}
	if val := os.Getenv("ASTFORGE_OUTPUT_PACKAGE"); val != "" {
		cfg.OutputPackage = val
	}
	if val := os.Getenv("ASTFORGE_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}
}

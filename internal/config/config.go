package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DKL_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: DKL_PORT -> port, etc.
	if err := k.Load(env.Provider("DKL_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DKL_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	if c.DataDir != "" && len(c.Include) == 0 {
		return fmt.Errorf("include patterns are required when data_dir is set")
	}

	if c.RetentionDays < 0 {
		return fmt.Errorf("retention_days must be non-negative")
	}

	t := c.Thresholds
	for name, v := range map[string]float64{
		"min_confidence":      t.MinConfidence,
		"direct_confidence":   t.DirectConfidence,
		"fallback_confidence": t.FallbackConfidence,
	} {
		if v <= 0 || v > 1 {
			return fmt.Errorf("thresholds.%s must be in (0, 1], got %v", name, v)
		}
	}
	if t.DirectConfidence < t.MinConfidence {
		return fmt.Errorf("thresholds.direct_confidence must not be below min_confidence")
	}
	if t.FallbackConfidence < t.MinConfidence {
		return fmt.Errorf("thresholds.fallback_confidence must not be below min_confidence")
	}

	return nil
}

package cmd

import (
	"fmt"

	"github.com/dekoninklijkeloop/dkl-assistant/internal/config"
	"github.com/dekoninklijkeloop/dkl-assistant/internal/engine"
	"github.com/dekoninklijkeloop/dkl-assistant/internal/kb"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `dklbot init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newEngine builds the answer engine from the configured knowledge base and
// thresholds.
func newEngine(cfg *config.Config) (*engine.Engine, error) {
	base, err := kb.Load(cfg.DataDir, cfg.Include)
	if err != nil {
		return nil, fmt.Errorf("loading knowledge base: %w", err)
	}

	thresholds := engine.Thresholds{
		MinConfidence:      cfg.Thresholds.MinConfidence,
		DirectConfidence:   cfg.Thresholds.DirectConfidence,
		FallbackConfidence: cfg.Thresholds.FallbackConfidence,
	}
	return engine.New(base, thresholds), nil
}

package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// candidateDataDirs are checked, in order, for knowledge-base YAML files when
// suggesting a data directory.
var candidateDataDirs = []string{"data", "kb", "content"}

// detectDataDir looks for a directory in the working tree that already holds
// YAML files, so the wizard can suggest it.
func detectDataDir() string {
	for _, dir := range candidateDataDirs {
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, _ := filepath.Glob(filepath.Join(dir, pattern))
			if len(matches) > 0 {
				return dir
			}
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .dklbot.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to dklbot! Let's configure the assistant.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Listen port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 2. Knowledge-base directory.
	detected := detectDataDir()
	if detected != "" {
		fmt.Printf("Found YAML files in %s/\n\n", detected)
	}
	dataPrompt := promptui.Prompt{
		Label:   "Knowledge-base directory (blank for the built-in dataset)",
		Default: detected,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 3. Telemetry database.
	dbPrompt := promptui.Prompt{
		Label:   "Telemetry database path (blank to disable logging)",
		Default: defaults.DBPath,
	}
	dbPath, err := dbPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("db path: %w", err)
	}

	// 4. Allowed origins.
	originsPrompt := promptui.Prompt{
		Label:   "Allowed CORS origins (comma-separated)",
		Default: strings.Join(defaults.Origins, ","),
	}
	originsStr, err := originsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("origins: %w", err)
	}
	origins := splitAndTrim(originsStr)

	cfg := DefaultConfig()
	cfg.Port = port
	cfg.DataDir = dataDir
	cfg.DBPath = dbPath
	if len(origins) > 0 {
		cfg.Origins = origins
	}

	configPath := ".dklbot.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace, dropping
// empty parts.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

package config

// DefaultIncludes are the glob patterns used to pick up knowledge-base files
// when none are configured.
var DefaultIncludes = []string{
	"**/*.yaml",
	"**/*.yml",
}

// DefaultOrigins are the production origins of the event site plus the local
// Vite dev server.
var DefaultOrigins = []string{
	"https://www.dekoninklijkeloop.nl",
	"https://dekoninklijkeloop.nl",
	"http://localhost:5173",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:          8080,
		DataDir:       "",
		Include:       DefaultIncludes,
		DBPath:        "dklbot.db",
		Origins:       DefaultOrigins,
		RetentionDays: 90,
		Thresholds: Thresholds{
			MinConfidence:      0.3,
			DirectConfidence:   0.6,
			FallbackConfidence: 0.5,
		},
	}
}

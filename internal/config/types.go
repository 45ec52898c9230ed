package config

// Thresholds are the confidence cut-offs of the answer engine. Values are
// fractions in (0, 1].
type Thresholds struct {
	// MinConfidence is the floor below which a FAQ match is discarded.
	MinConfidence float64 `yaml:"min_confidence" koanf:"min_confidence"`
	// DirectConfidence accepts a FAQ match without consulting the schedule.
	DirectConfidence float64 `yaml:"direct_confidence" koanf:"direct_confidence"`
	// FallbackConfidence is the bar for a FAQ answer reached as a fallback
	// from an empty schedule search.
	FallbackConfidence float64 `yaml:"fallback_confidence" koanf:"fallback_confidence"`
}

// Config is the top-level dklbot configuration, corresponding to .dklbot.yml.
type Config struct {
	// Port is the HTTP listen port of the assistant API.
	Port int `yaml:"port" koanf:"port"`
	// DataDir holds the knowledge-base YAML files. Empty means the embedded
	// dataset.
	DataDir string `yaml:"data_dir" koanf:"data_dir"`
	// Include are the glob patterns selecting knowledge-base files inside
	// DataDir.
	Include []string `yaml:"include" koanf:"include"`
	// DBPath is the SQLite file for chat telemetry. Empty disables logging.
	DBPath string `yaml:"db_path" koanf:"db_path"`
	// Origins are the allowed CORS origins for the HTTP API.
	Origins []string `yaml:"origins" koanf:"origins"`
	// AllowAllOrigins opens the API to any origin, for local development.
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	// RetentionDays is how long chat telemetry is kept. Zero keeps it forever.
	RetentionDays int `yaml:"retention_days" koanf:"retention_days"`

	Thresholds Thresholds `yaml:"thresholds" koanf:"thresholds"`
}

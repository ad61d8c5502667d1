package config

// InputFormat selects how the CLI reads names.
type InputFormat string

const (
	// InputHex reads names as hex encoded wire format.
	InputHex InputFormat = "hex"
	// InputText reads names in presentation format.
	InputText InputFormat = "text"
)

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `yaml:"level"`
	Structured       bool              `yaml:"structured"`
	StructuredFormat string            `yaml:"structured_format"`
	IncludePID       bool              `yaml:"include_pid"`
	ExtraFields      map[string]string `yaml:"extra_fields,omitempty"`
}

// InputConfig controls how names given to the CLI are interpreted.
type InputConfig struct {
	Format InputFormat `yaml:"format"`
	// Relative makes the CLI expect relative names instead of absolute ones.
	Relative bool `yaml:"relative"`
}

// DatabaseConfig points at the name index.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// APIConfig contains management API settings.
//
// Note: APIKey is treated as a secret and is never returned by API endpoints.
type APIConfig struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key,omitempty"`
	// StaticDir, if set, is served at the root of the API server.
	StaticDir string `yaml:"static_dir,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Input    InputConfig    `yaml:"input"`
	Database DatabaseConfig `yaml:"database"`
	API      APIConfig      `yaml:"api"`
}

package config

// Config holds runtime settings for the pop CLI.
//
// Fields:
//   - DatabasePath: path of the on-device SQLite database file.
//   - ExportDir: directory where CSV exports are written.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	DatabasePath string
	ExportDir    string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "pop.db"
	c.ExportDir = "exports"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

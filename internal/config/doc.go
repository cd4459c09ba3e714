// Package config loads runtime configuration for the pop CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the SQLite database file
//	-e string   directory for CSV exports
//	-l string   minimum log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "database_path": "pop.db",
//	  "export_dir": "exports",
//	  "log_level": "info"
//	}
//
// Primary API
//
//   - type Config                     — holds DatabasePath, ExportDir and LogLevel
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables; use the JSON file
// or flags to configure values.
package config

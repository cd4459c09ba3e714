package config

import (
	"flag"
	"os"

	"github.com/peopleoverparty/pop/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the SQLite database file (default from Config)
//	-e string   directory for CSV exports (default from Config)
//	-l string   minimum log level: debug, info, warn, error (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the SQLite database file")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory for CSV exports")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "minimum log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

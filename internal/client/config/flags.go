package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/notemark/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string     database file (default from Config)
//	-e            encrypt snapshots
//	-t duration   snapshot write timeout
//	-l string     log level
//
// Only the flags named here are passed to the parser, see flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the SQLite database file")
	fs.BoolVar(&cfg.Encrypt, "e", cfg.Encrypt, "encrypt the snapshot with a passphrase")
	fs.DurationVar(&cfg.SaveTimeout, "t", cfg.SaveTimeout, "snapshot write timeout")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

package config

import (
	"flag"
	"os"
	"time"

	"github.com/winkhq/onboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-d string   path of the local draft database file (default from Config)
//	-i int      autosave delay in milliseconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DraftDBPath, "d", cfg.DraftDBPath, "path of the local draft database file")
	autosaveDelay := fs.Int("i", int(cfg.AutosaveDelay.Milliseconds()), "autosave delay (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AutosaveDelay = time.Duration(*autosaveDelay) * time.Millisecond
}

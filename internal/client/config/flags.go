package config

import (
	"flag"
	"os"
	"time"

	"github.com/rnand/qkart-v2/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend REST API
//	-d int      search debounce window in milliseconds
//	-t int      request timeout in seconds
//	-s string   path to the session database file
//
// The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointURL, "a", cfg.EndpointURL, "base URL of the backend REST API")
	debounceMs := fs.Int("d", int(cfg.SearchDebounceWindow.Milliseconds()), "search debounce window (in milliseconds)")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDBPath, "s", cfg.SessionDBPath, "path to the session database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SearchDebounceWindow = time.Duration(*debounceMs) * time.Millisecond
	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}

package config

import (
	"flag"
	"os"
	"time"

	"github.com/Mystogan321/useradmin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   storage driver (default from Config)
//	-k string   token signing key (default from Config)
//	-l int      transport latency in milliseconds (default from Config)
//	-n int      table rows per page (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-l", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Storage.Driver, "d", cfg.Storage.Driver, "storage driver (memory, file, sqlite, postgres, s3)")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "token signing key")
	latencyMs := fs.Int("l", int(cfg.TransportLatency.Milliseconds()), "transport latency (in milliseconds)")
	fs.IntVar(&cfg.ItemsPerPage, "n", cfg.ItemsPerPage, "table rows per page")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.TransportLatency = time.Duration(*latencyMs) * time.Millisecond
}

package config

import (
	"flag"
	"os"
	"time"

	"github.com/young-sensey/dochub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the API server
//	-t int      request timeout in seconds
//	-n int      notification banner lifetime in seconds
//	-d string   path of the session database file
//
// os.Args is filtered down to these flags via flagx.FilterArgs so flags
// owned by other components do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-n", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the API server")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	ttl := fs.Int("n", int(cfg.NotificationTTL.Seconds()), "notification lifetime (in seconds)")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "session database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.NotificationTTL = time.Duration(*ttl) * time.Second
}

package config

import (
	"flag"
	"os"
)

// parseFlags populates Config fields from command-line flags. Flag values
// win over both defaults and the YAML overlay.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("web", flag.ExitOnError)

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP network address")
	fs.StringVar(&cfg.DatabaseDSN, "dsn", cfg.DatabaseDSN, "Path to SQLite3 database file")
	fs.StringVar(&cfg.HTMLDir, "html-dir", cfg.HTMLDir, "Path to HTML templates")
	fs.StringVar(&cfg.StaticDir, "static-dir", cfg.StaticDir, "Path to static assets")
	fs.IntVar(&cfg.SessionMinutes, "session-minutes", cfg.SessionMinutes, "Session lifetime in minutes")

	// Registered so the overlay flag passes flag-set parsing
	fs.String("config", "", "Path to YAML config file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}
}

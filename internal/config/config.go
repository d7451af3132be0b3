// Package config handles runtime configuration for the web application,
// including defaults, an optional YAML overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the feedback server.
//
// Fields:
//   - Addr: HTTP bind address.
//   - DatabaseDSN: path to the SQLite database file.
//   - HTMLDir / StaticDir: template and static asset directories.
//   - SessionMinutes: server-side session lifetime, minutes.
type Config struct {
	Addr           string `yaml:"addr"`
	DatabaseDSN    string `yaml:"database_dsn"`
	HTMLDir        string `yaml:"html_dir"`
	StaticDir      string `yaml:"static_dir"`
	SessionMinutes int    `yaml:"session_minutes"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":4000"
	c.DatabaseDSN = "./feedback.db"
	c.HTMLDir = "./ui/html"
	c.StaticDir = "./ui/static"
	c.SessionMinutes = 24 * 60
}

// SessionDuration returns the configured session lifetime.
func (c *Config) SessionDuration() time.Duration {
	return time.Duration(c.SessionMinutes) * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional YAML file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseYAML(cfg)
	parseFlags(cfg)
	return cfg
}

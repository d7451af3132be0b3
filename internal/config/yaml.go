package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// configFilePath extracts the value of the -config flag from args without
// parsing the full flag set, so the overlay can run before parseFlags.
func configFilePath(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "-config" || arg == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "-config="):
			return strings.TrimPrefix(arg, "-config=")
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

// parseYAML overlays Config with values from the file named by -config.
// A missing flag means no overlay; a broken file is a startup error.
func parseYAML(cfg *Config) {
	path := configFilePath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		panic(err)
	}
}

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/mrz1836/go-sanitize"
)

// Environment variable names.
const (
	EnvHome          = "SEEDCASH_HOME"
	EnvOutputFormat  = "SEEDCASH_OUTPUT_FORMAT"
	EnvAddressFormat = "SEEDCASH_ADDRESS_FORMAT"
	EnvVerbose       = "SEEDCASH_VERBOSE"
	EnvLogLevel      = "SEEDCASH_LOG_LEVEL"
	EnvNoColor       = "NO_COLOR"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = sanitize.SingleLine(strings.TrimSpace(v))
	}

	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(sanitize.SingleLine(v))
	}

	if v := os.Getenv(EnvAddressFormat); v != "" {
		cfg.Derivation.AddressFormat = strings.ToLower(sanitize.SingleLine(v))
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(sanitize.SingleLine(v))
	}

	// NO_COLOR disables colored output
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		cfg.Output.Color = "never"
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}

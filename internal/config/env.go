package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables that override config file values.
const (
	EnvHome      = "SHELFVIEW_HOME"
	EnvEndpoint  = "SHELFVIEW_ENDPOINT"
	EnvTimeout   = "SHELFVIEW_TIMEOUT"
	EnvPageSize  = "SHELFVIEW_PAGE_SIZE"
	EnvLocale    = "SHELFVIEW_LOCALE"
	EnvCurrency  = "SHELFVIEW_CURRENCY"
	EnvOutput    = "SHELFVIEW_OUTPUT"
	EnvLogLevel  = "SHELFVIEW_LOG_LEVEL"
	EnvLogFormat = "SHELFVIEW_LOG_FORMAT"
	EnvLogFile   = "SHELFVIEW_LOG_FILE"
)

// LookupEnvFunc matches os.LookupEnv so tests can inject an environment.
type LookupEnvFunc func(string) (string, bool)

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables already set are not overridden. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg fields from the environment.
func ApplyEnv(cfg *Config, lookupEnv LookupEnvFunc) error {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	if v, ok := lookupEnv(EnvEndpoint); ok && v != "" {
		cfg.Catalog.Endpoint = v
	}
	if v, ok := lookupEnv(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvTimeout, err)
		}
		cfg.Catalog.Timeout = d
	}
	if v, ok := lookupEnv(EnvPageSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvPageSize, err)
		}
		cfg.View.PageSize = n
	}
	if v, ok := lookupEnv(EnvLocale); ok && v != "" {
		cfg.Display.Locale = v
	}
	if v, ok := lookupEnv(EnvCurrency); ok && v != "" {
		cfg.Display.Currency = v
	}
	if v, ok := lookupEnv(EnvOutput); ok && v != "" {
		cfg.Output.DefaultFormat = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		cfg.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		cfg.Logging.File = v
	}
	return nil
}

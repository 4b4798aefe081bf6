package config

import (
	"github.com/rshade/shelfview/internal/logging"
)

// ToLoggingConfig converts the logging section to a logging.Config.
//
// If File is set, output goes to that file; otherwise to stderr.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global logging section.
// Callers apply flag overrides (for example --debug) on the copy.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/shelfview/internal/config"
	"github.com/rshade/shelfview/internal/logging"
	"github.com/rshade/shelfview/internal/tui"
)

// annotationFullScreen marks commands that may take over the terminal.
const annotationFullScreen = "shelfview/fullscreen"

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command, debug bool) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
	}

	// A full-screen dashboard shares the terminal with stderr. Without a log
	// file only errors are written.
	fullScreen := cmd.Annotations[annotationFullScreen] == "true" &&
		tui.DetectOutputMode(false, false, false) == tui.OutputModeInteractive
	if fullScreen && loggingCfg.File == "" {
		loggingCfg.Level = "error"
	} else if debug {
		loggingCfg.File = ""
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile && !fullScreen {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.CommandPath()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(cmd *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult == nil {
		return nil
	}
	logger.Debug().Ctx(cmd.Context()).Str("command", cmd.CommandPath()).Msg("command finished")
	return logResult.Close()
}

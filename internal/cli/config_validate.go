package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/shelfview/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration",
		Long: `Validates the configuration resolved from the config file, .env file,
environment variables and flags.

This checks that:
- the catalog endpoint is an absolute http(s) URL
- the timeout is positive and the refresh interval is not negative
- the page size is one of the page size options
- the output format, locale and currency are recognized`,
		Example: `  # Validate current configuration
  shelfview config validate

  # Validate and show detailed information
  shelfview config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Catalog endpoint: %s\n", cfg.Catalog.Endpoint)
	cmd.Printf("  Request timeout: %s\n", cfg.Catalog.Timeout)
	cmd.Printf("  Min refresh interval: %s\n", cfg.Catalog.MinRefreshInterval)
	cmd.Printf("  Page size: %d (options: %v)\n", cfg.View.PageSize, cfg.View.PageSizeOptions)
	cmd.Printf("  Locale: %s, currency: %s\n", cfg.Display.Locale, cfg.Display.Currency)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
}

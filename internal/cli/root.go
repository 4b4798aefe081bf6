package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/shelfview/internal/config"
	"github.com/rshade/shelfview/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	debug      bool
	configPath string
	endpoint   string
	timeout    time.Duration
}

// NewRootCmd creates the root Cobra command for the shelfview CLI.
// It wires up configuration, logging, tracing and the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv config.LookupEnvFunc) *cobra.Command {
	var (
		flags     rootFlags
		logResult *logging.LogPathResult
	)

	cmd := &cobra.Command{
		Use:     "shelfview",
		Short:   "Browse a remote product catalog from the terminal",
		Long:    "shelfview downloads a product catalog and lets you search, sort and page through it.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd, flags, lookupEnv); err != nil {
				return err
			}
			result := setupLogging(cmd, flags.debug)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	pf.StringVar(&flags.configPath, "config", "",
		"config file (default $SHELFVIEW_HOME/config.yaml or ~/.shelfview/config.yaml)")
	pf.StringVar(&flags.endpoint, "endpoint", "", "catalog endpoint URL (overrides config)")
	pf.DurationVar(&flags.timeout, "timeout", 0, "catalog request timeout, e.g. 10s (overrides config)")

	cmd.AddCommand(NewBrowseCmd(), newProductsCmd(), newConfigCmd())

	return cmd
}

// loadConfig resolves configuration from file, .env, environment and flags,
// and installs it as the global config. It does not validate: commands that
// need a valid config call Validate themselves so that `config validate` can
// report problems.
func loadConfig(cmd *cobra.Command, flags rootFlags, lookupEnv config.LookupEnvFunc) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if err = config.LoadDotEnv(""); err != nil {
		return err
	}
	if err = config.ApplyEnv(cfg, lookupEnv); err != nil {
		return fmt.Errorf("applying environment: %w", err)
	}

	if cmd.Flags().Changed("endpoint") {
		cfg.Catalog.Endpoint = flags.endpoint
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Catalog.Timeout = flags.timeout
	}

	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Browse the catalog interactively
  shelfview browse

  # Print the second page of shirts sorted by price, highest first
  shelfview products list --search shirt --sort price:desc --page 2

  # Stream every product as NDJSON
  shelfview products list --page-size 1000 --output ndjson

  # Use a different catalog
  shelfview --endpoint http://localhost:8080/products products list

  # Write a default configuration file
  shelfview config init`

// newProductsCmd creates the products command group.
func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "products", Short: "Product catalog commands"}
	cmd.AddCommand(NewProductsListCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigShowCmd(), NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}

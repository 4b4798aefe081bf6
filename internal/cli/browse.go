package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/shelfview/internal/cli/pagination"
	"github.com/rshade/shelfview/internal/config"
	"github.com/rshade/shelfview/internal/tui"
)

// browseFlags holds the flags of `browse`.
type browseFlags struct {
	search   string
	sort     string
	pageSize int
}

// NewBrowseCmd creates the interactive dashboard command.
func NewBrowseCmd() *cobra.Command {
	var flags browseFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the product catalog interactively",
		Long: `Opens a full-screen product table.

Keys: / search, t sort by title, p sort by price, z cycle page size,
←/→ change page, ↑/↓ move, enter details, esc back or clear search,
r refresh, q quit.

When stdout is not a terminal the first page is printed as a table instead.`,
		Example: `  # Open the dashboard
  shelfview browse

  # Start on shirts, cheapest first
  shelfview browse --search shirt --sort price`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationFullScreen: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.search, "search", "", "initial title filter")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "initial sort: title|price|none[:asc|desc]")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "initial page size (default from config)")

	return cmd
}

func runBrowse(cmd *cobra.Command, flags browseFlags) error {
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	pageSize := flags.pageSize
	if pageSize == 0 {
		pageSize = cfg.View.PageSize
	}

	if tui.DetectOutputMode(false, false, false) != tui.OutputModeInteractive {
		logger.Debug().Ctx(cmd.Context()).Msg("stdout is not interactive, printing first page")
		return runProductsList(cmd, productsListFlags{
			search:   flags.search,
			sort:     flags.sort,
			page:     pagination.DefaultPage,
			pageSize: pageSize,
			output:   config.OutputTable,
		})
	}

	params := pagination.PaginationParams{
		Page:     pagination.DefaultPage,
		PageSize: pageSize,
		Search:   flags.search,
		Sort:     flags.sort,
	}
	if err := params.Validate(); err != nil {
		return err
	}
	sortCfg, err := pagination.ParseSort(flags.sort)
	if err != nil {
		return err
	}

	p, err := newPresenter(cfg)
	if err != nil {
		return err
	}

	// Cancels an in-flight fetch when the dashboard exits.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	model := tui.NewProductsModel(ctx, newCatalogClient(cfg), tui.ProductsOptions{
		PageSize:  pageSize,
		PageSizes: cfg.View.PageSizeOptions,
		Search:    flags.search,
		Sort:      sortCfg,
		Locale:    p.locale,
		Formatter: p.formatter,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = program.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}

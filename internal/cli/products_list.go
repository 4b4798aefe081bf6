package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/rshade/shelfview/internal/catalog"
	"github.com/rshade/shelfview/internal/cli/pagination"
	"github.com/rshade/shelfview/internal/config"
	"github.com/rshade/shelfview/internal/display"
)

// productsListFlags holds the flags of `products list`.
type productsListFlags struct {
	search   string
	sort     string
	page     int
	pageSize int
	output   string
}

// NewProductsListCmd creates the `products list` command: one pass of the
// fetch, filter, sort, paginate pipeline printed to stdout.
func NewProductsListCmd() *cobra.Command {
	var flags productsListFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the product catalog",
		Long: `Fetches the product catalog and prints one page of it.

Products are filtered by a case-insensitive title search, sorted, and paged
client-side. Sort expressions are "field" or "field:order" where field is
title, price or none and order is asc (default) or desc.`,
		Example: `  # First page with the configured page size
  shelfview products list

  # Cheapest shirts first, as JSON
  shelfview products list --search shirt --sort price --output json

  # Third page of 20, titles Z to A
  shelfview products list --sort title:desc --page 3 --page-size 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProductsList(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.search, "search", "", "case-insensitive title filter")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort expression: title|price|none[:asc|desc]")
	cmd.Flags().IntVar(&flags.page, "page", pagination.DefaultPage, "page number (1-based)")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "products per page (default from config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output format: table, json, or ndjson (default from config)")

	return cmd
}

func runProductsList(cmd *cobra.Command, flags productsListFlags) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	format := flags.output
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if !isValidOutputFormat(format) {
		return fmt.Errorf("unsupported output format: %s", format)
	}

	params := pagination.PaginationParams{
		Page:     flags.page,
		PageSize: flags.pageSize,
		Search:   flags.search,
		Sort:     flags.sort,
	}
	if params.PageSize == 0 {
		params.PageSize = cfg.View.PageSize
	}
	if err := params.Validate(); err != nil {
		return err
	}

	presenter, err := newPresenter(cfg)
	if err != nil {
		return err
	}

	products, err := fetchProducts(ctx, newCatalogClient(cfg))
	if err != nil {
		return err
	}

	state, err := params.ViewState(products, presenter.locale)
	if err != nil {
		return err
	}

	logger.Debug().Ctx(ctx).
		Int("visible", len(state.Visible())).
		Int("page", state.PageNumber()).
		Str("format", format).
		Msg("rendering products")

	return renderProducts(cmd.OutOrStdout(), format, state, presenter.formatter)
}

// presenter bundles the locale-dependent display settings.
type presenter struct {
	locale    language.Tag
	formatter *display.Formatter
}

func newPresenter(cfg *config.Config) (presenter, error) {
	tag, err := cfg.Display.Tag()
	if err != nil {
		return presenter{}, err
	}
	unit, err := cfg.Display.Unit()
	if err != nil {
		return presenter{}, err
	}
	return presenter{locale: tag, formatter: display.NewFormatter(tag, unit)}, nil
}

// newCatalogClient builds the catalog gateway from cfg.
func newCatalogClient(cfg *config.Config) *catalog.Client {
	return catalog.NewClient(cfg.Catalog.Endpoint,
		catalog.WithTimeout(cfg.Catalog.Timeout),
		catalog.WithMinInterval(cfg.Catalog.MinRefreshInterval),
	)
}

// fetchProducts downloads the catalog once.
func fetchProducts(ctx context.Context, fetcher catalog.Fetcher) ([]catalog.Product, error) {
	products, err := fetcher.FetchAll(ctx)
	if err != nil {
		logger.Error().Ctx(ctx).Err(err).Msg("catalog fetch failed")
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	return products, nil
}

// isValidOutputFormat checks if the provided format is one of the supported output formats.
func isValidOutputFormat(format string) bool {
	switch format {
	case config.OutputTable, config.OutputJSON, config.OutputNDJSON:
		return true
	default:
		return false
	}
}

package pagination

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/rshade/shelfview/internal/catalog"
	"github.com/rshade/shelfview/internal/engine"
)

// Validation limits and defaults.
const (
	DefaultPage   = 1
	MinPage       = 1
	MinPageSize   = 1
	MaxPageSize   = 1000
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Common validation errors.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidPageSize   = errors.New("page-size must be between 1 and 1000")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'price:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// PaginationParams holds the list flags of a products command.
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	// Page is the 1-based page to show. Pages past the end clamp to the last page.
	Page int

	// PageSize is the number of products per page.
	PageSize int

	// Search is the case-insensitive title filter.
	Search string

	// Sort is a "field[:order]" expression, empty for upstream order.
	Sort string
}

// NewPaginationParams creates params for page 1 with the given page size.
func NewPaginationParams(pageSize int) *PaginationParams {
	return &PaginationParams{
		Page:     DefaultPage,
		PageSize: pageSize,
	}
}

// Validate checks page bounds and the sort expression.
func (p PaginationParams) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if _, err := ParseSort(p.Sort); err != nil {
		return err
	}
	return nil
}

// ViewState validates the params and returns a view over products positioned
// on the requested page.
func (p PaginationParams) ViewState(products []catalog.Product, locale language.Tag) (engine.ViewState, error) {
	if err := p.Validate(); err != nil {
		return engine.ViewState{}, err
	}
	sortCfg, err := ParseSort(p.Sort)
	if err != nil {
		return engine.ViewState{}, err
	}

	state := engine.NewViewState(p.PageSize,
		engine.WithLocale(locale),
		engine.WithSearch(p.Search),
		engine.WithSort(sortCfg),
	)
	return state.Load(products).GoToPage(p.Page), nil
}

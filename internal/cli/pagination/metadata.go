package pagination

import "github.com/rshade/shelfview/internal/engine"

// PaginationMeta contains metadata about paginated results.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage int    `json:"current_page" yaml:"current_page"`
	PageSize    int    `json:"page_size"    yaml:"page_size"`
	TotalPages  int    `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int    `json:"total_items"  yaml:"total_items"`
	HasPrevious bool   `json:"has_previous" yaml:"has_previous"`
	HasNext     bool   `json:"has_next"     yaml:"has_next"`
	Search      string `json:"search,omitempty" yaml:"search,omitempty"`
	Sort        string `json:"sort"         yaml:"sort"`
}

// NewPaginationMeta describes the current page of state.
func NewPaginationMeta(state engine.ViewState) PaginationMeta {
	page := state.Page()
	return PaginationMeta{
		CurrentPage: page.Number,
		PageSize:    page.Size,
		TotalPages:  page.TotalPages,
		TotalItems:  page.TotalItems,
		HasPrevious: page.HasPrev,
		HasNext:     page.HasNext,
		Search:      state.Search(),
		Sort:        state.Sorting().String(),
	}
}

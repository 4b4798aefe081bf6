package engine

import (
	"golang.org/x/text/language"

	"github.com/rshade/shelfview/internal/catalog"
)

// ViewState is the synchronized control state of a product list view:
// loaded products, search term, sort config, page size and current page.
//
// ViewState is a value. Every operation returns an updated copy and leaves
// the receiver untouched, so callers keep the state they own explicitly:
//
//	state = state.NextPage()
type ViewState struct {
	all     []catalog.Product
	visible []catalog.Product

	search   string
	sort     SortConfig
	page     int
	pageSize int
	locale   language.Tag
}

// ViewOption configures a new ViewState.
type ViewOption func(*ViewState)

// WithLocale sets the collation language used for title sorting.
func WithLocale(tag language.Tag) ViewOption {
	return func(v *ViewState) {
		v.locale = tag
	}
}

// WithSort sets the initial sort config.
func WithSort(cfg SortConfig) ViewOption {
	return func(v *ViewState) {
		v.sort = cfg
	}
}

// WithSearch sets the initial search term.
func WithSearch(term string) ViewOption {
	return func(v *ViewState) {
		v.search = term
	}
}

// NewViewState returns an empty state on page 1. A pageSize below 1 is
// treated as 1.
func NewViewState(pageSize int, opts ...ViewOption) ViewState {
	v := ViewState{
		sort:     DefaultSort(),
		page:     1,
		pageSize: max(pageSize, 1),
		locale:   language.English,
	}
	for _, opt := range opts {
		opt(&v)
	}
	return v.refresh()
}

// refresh recomputes the visible list and goes back to page 1.
func (v ViewState) refresh() ViewState {
	v.visible = SortIn(v.locale, Filter(v.all, v.search), v.sort)
	v.page = 1
	return v
}

// Load replaces the product list, keeping search and sort.
func (v ViewState) Load(products []catalog.Product) ViewState {
	v.all = products
	return v.refresh()
}

// SetSearch replaces the search term.
func (v ViewState) SetSearch(term string) ViewState {
	v.search = term
	return v.refresh()
}

// ToggleSort applies SortConfig.Toggle for column.
func (v ViewState) ToggleSort(column SortColumn) ViewState {
	v.sort = v.sort.Toggle(column)
	return v.refresh()
}

// SetSort replaces the sort config.
func (v ViewState) SetSort(cfg SortConfig) ViewState {
	v.sort = cfg
	return v.refresh()
}

// SetPageSize changes the page size. The visible list is unchanged but the
// view returns to page 1.
func (v ViewState) SetPageSize(size int) ViewState {
	v.pageSize = max(size, 1)
	v.page = 1
	return v
}

// NextPage advances one page, or does nothing on the last page.
func (v ViewState) NextPage() ViewState {
	if v.page < v.TotalPages() {
		v.page++
	}
	return v
}

// PrevPage goes back one page, or does nothing on page 1.
func (v ViewState) PrevPage() ViewState {
	if v.page > 1 {
		v.page--
	}
	return v
}

// GoToPage jumps to page n, clamped into [1, TotalPages].
func (v ViewState) GoToPage(n int) ViewState {
	v.page = min(max(n, 1), v.TotalPages())
	return v
}

// Page returns the current page of the visible list.
func (v ViewState) Page() Page {
	return Paginate(v.visible, v.pageSize, v.page)
}

// TotalPages returns the page count of the visible list.
func (v ViewState) TotalPages() int {
	return TotalPages(len(v.visible), v.pageSize)
}

// PageNumber returns the current 1-based page.
func (v ViewState) PageNumber() int { return v.page }

// PageSize returns the number of products per page.
func (v ViewState) PageSize() int { return v.pageSize }

// Search returns the active search term.
func (v ViewState) Search() string { return v.search }

// Sorting returns the active sort config.
func (v ViewState) Sorting() SortConfig { return v.sort }

// Locale returns the collation language.
func (v ViewState) Locale() language.Tag { return v.locale }

// All returns every loaded product in upstream order.
func (v ViewState) All() []catalog.Product { return v.all }

// Visible returns the filtered and sorted products.
func (v ViewState) Visible() []catalog.Product { return v.visible }

// Loaded reports whether any products have been loaded.
func (v ViewState) Loaded() bool { return len(v.all) > 0 }

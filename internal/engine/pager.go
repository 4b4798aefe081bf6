package engine

import "github.com/rshade/shelfview/internal/catalog"

// Page is one window of the visible product list.
type Page struct {
	Items []catalog.Product

	// Number is the 1-based page number that was requested.
	Number int
	Size   int

	// TotalPages is at least 1, even when there are no items.
	TotalPages int
	TotalItems int

	HasPrev bool
	HasNext bool

	// Offset is the index of Items[0] within the full list.
	Offset int
}

// Empty reports the no-data state: the list being paged has no items.
func (p Page) Empty() bool {
	return p.TotalItems == 0
}

// TotalPages returns max(1, ceil(count/pageSize)). A pageSize below 1 is
// treated as 1.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	if count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Paginate returns page number page of products. Out of range pages have no
// items. Items is a subslice of products and must not be modified.
func Paginate(products []catalog.Product, pageSize, page int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	count := len(products)
	total := TotalPages(count, pageSize)

	result := Page{
		Number:     page,
		Size:       pageSize,
		TotalPages: total,
		TotalItems: count,
		HasPrev:    page > 1,
		HasNext:    page < total && count > 0,
	}

	if page < 1 {
		return result
	}
	start := (page - 1) * pageSize
	result.Offset = start
	if start >= count {
		return result
	}
	end := min(start+pageSize, count)
	result.Items = products[start:end:end]
	return result
}

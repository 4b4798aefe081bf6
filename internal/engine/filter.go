package engine

import (
	"strings"

	"github.com/rshade/shelfview/internal/catalog"
)

// Filter returns the products whose title contains term, ignoring case.
// The term is matched exactly as typed; surrounding whitespace is significant.
// An empty term returns products unchanged. Relative order is preserved.
func Filter(products []catalog.Product, term string) []catalog.Product {
	if term == "" {
		return products
	}

	needle := strings.ToLower(term)
	matched := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

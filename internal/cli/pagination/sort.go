package pagination

import (
	"fmt"
	"strings"

	"github.com/rshade/shelfview/internal/engine"
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "title", "price:desc", "none". The order defaults to asc.
// An empty string keeps upstream order.
func ParseSort(sortStr string) (engine.SortConfig, error) {
	if strings.TrimSpace(sortStr) == "" {
		return engine.DefaultSort(), nil
	}

	parts := strings.Split(sortStr, ":")
	if len(parts) > sortPartsMax {
		return engine.SortConfig{}, fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	field := strings.TrimSpace(parts[0])
	if field == "" {
		return engine.SortConfig{}, ErrEmptySortField
	}
	column, err := engine.ParseSortColumn(field)
	if err != nil {
		return engine.SortConfig{}, fmt.Errorf("%w: %q (valid: %s)",
			ErrInvalidSortField, field, strings.Join(engine.ValidSortColumns(), ", "))
	}

	order := SortOrderAsc
	if len(parts) == sortPartsMax {
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	}
	direction, err := engine.ParseSortDirection(order)
	if err != nil || order == "" {
		return engine.SortConfig{}, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	if column == engine.SortNone {
		return engine.DefaultSort(), nil
	}
	return engine.SortConfig{Column: column, Direction: direction}, nil
}

// IsValidSortField reports whether field names a sortable column.
func IsValidSortField(field string) bool {
	if strings.TrimSpace(field) == "" {
		return false
	}
	_, err := engine.ParseSortColumn(field)
	return err == nil
}

package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rshade/shelfview/internal/catalog"
)

// SortColumn identifies the product field used for ordering.
type SortColumn string

// Sortable columns.
const (
	SortNone  SortColumn = "none"
	SortTitle SortColumn = "title"
	SortPrice SortColumn = "price"
)

// SortDirection is the ordering direction.
type SortDirection string

// Sort directions.
const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Sort parsing errors.
var (
	ErrUnknownSortColumn    = errors.New("unknown sort column")
	ErrUnknownSortDirection = errors.New("unknown sort direction")
)

// SortConfig is the active sort column and direction.
type SortConfig struct {
	Column    SortColumn    `json:"column"    yaml:"column"`
	Direction SortDirection `json:"direction" yaml:"direction"`
}

// DefaultSort keeps upstream order.
func DefaultSort() SortConfig {
	return SortConfig{Column: SortNone, Direction: Ascending}
}

// Toggle returns the config after the user selects column: selecting the
// active column flips the direction, selecting any other column starts
// ascending.
func (c SortConfig) Toggle(column SortColumn) SortConfig {
	if column == c.Column && column != SortNone {
		if c.Direction == Ascending {
			return SortConfig{Column: column, Direction: Descending}
		}
		return SortConfig{Column: column, Direction: Ascending}
	}
	return SortConfig{Column: column, Direction: Ascending}
}

func (c SortConfig) String() string {
	if c.Column == "" || c.Column == SortNone {
		return string(SortNone)
	}
	return string(c.Column) + ":" + string(c.Direction)
}

// ValidSortColumns lists the accepted column names.
func ValidSortColumns() []string {
	return []string{string(SortNone), string(SortTitle), string(SortPrice)}
}

// ParseSortColumn maps a user supplied name to a SortColumn.
func ParseSortColumn(s string) (SortColumn, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(SortNone):
		return SortNone, nil
	case string(SortTitle), "name":
		return SortTitle, nil
	case string(SortPrice):
		return SortPrice, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownSortColumn, s,
			strings.Join(ValidSortColumns(), ", "))
	}
}

// ParseSortDirection maps a user supplied name to a SortDirection.
// An empty string means ascending.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Ascending), "ascending":
		return Ascending, nil
	case string(Descending), "descending":
		return Descending, nil
	default:
		return "", fmt.Errorf("%w: %q (must be asc or desc)", ErrUnknownSortDirection, s)
	}
}

// Sort returns a new slice ordered by cfg, comparing titles with English
// collation rules. See SortIn.
func Sort(products []catalog.Product, cfg SortConfig) []catalog.Product {
	return SortIn(language.English, products, cfg)
}

// SortIn returns a new slice ordered by cfg. Titles are compared with the
// collation rules of tag, so case does not dominate alphabetical order.
// The input slice is never modified, and the result never shares its
// backing array, even when cfg is SortNone.
func SortIn(tag language.Tag, products []catalog.Product, cfg SortConfig) []catalog.Product {
	sorted := make([]catalog.Product, len(products))
	copy(sorted, products)

	var less func(a, b catalog.Product) bool
	switch cfg.Column {
	case SortTitle:
		col := collate.New(tag)
		less = func(a, b catalog.Product) bool {
			return col.CompareString(a.Title, b.Title) < 0
		}
	case SortPrice:
		less = func(a, b catalog.Product) bool {
			return a.Price < b.Price
		}
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if cfg.Direction == Descending {
			i, j = j, i
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

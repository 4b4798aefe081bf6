// Package display maps engine pages to presentation rows.
//
// Everything here is a total function: malformed product data (missing
// description or category, unusable image URLs) degrades to placeholder text
// and never fails a row.
package display

import (
	"fmt"

	"github.com/rshade/shelfview/internal/engine"
)

// Placeholder texts.
const (
	NoDescription = "No description available"
	NoCategory    = "Uncategorized"
	NoProducts    = "No products found"
)

// Row is one rendered product line.
type Row struct {
	// Ordinal is the 1-based position across all pages.
	Ordinal     int     `json:"ordinal"`
	ID          int     `json:"id"`
	ImageURL    string  `json:"image_url"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

// NewRows maps the items of page to rows. A nil formatter uses DefaultFormatter.
func NewRows(page engine.Page, f *Formatter) []Row {
	if f == nil {
		f = DefaultFormatter()
	}

	rows := make([]Row, 0, len(page.Items))
	for i, p := range page.Items {
		description := p.Description
		if description == "" {
			description = NoDescription
		}
		category := p.CategoryName()
		if category == "" {
			category = NoCategory
		}

		rows = append(rows, Row{
			Ordinal:     page.Offset + i + 1,
			ID:          p.ID,
			ImageURL:    ResolveImageURL(p.Images),
			Title:       p.Title,
			Description: description,
			Price:       f.Price(p.Price),
			Amount:      p.Price,
			Category:    category,
		})
	}
	return rows
}

// PageIndicator returns "Page X / Y", or NoProducts for an empty list.
func PageIndicator(page engine.Page) string {
	if page.Empty() {
		return NoProducts
	}
	return fmt.Sprintf("Page %d / %d", page.Number, page.TotalPages)
}

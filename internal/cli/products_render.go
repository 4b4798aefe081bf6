package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/rshade/shelfview/internal/cli/pagination"
	"github.com/rshade/shelfview/internal/config"
	"github.com/rshade/shelfview/internal/display"
	"github.com/rshade/shelfview/internal/engine"
)

const (
	tabPadding        = 2
	maxTitleLen       = 40
	maxDescriptionLen = 50
)

// productsOutput is the JSON document written by `products list -o json`.
type productsOutput struct {
	Products   []display.Row             `json:"products"`
	Pagination pagination.PaginationMeta `json:"pagination"`
}

// renderProducts writes the current page of state in format.
// A closed pipe on the reading side is not an error.
func renderProducts(w io.Writer, format string, state engine.ViewState, f *display.Formatter) error {
	page := state.Page()
	rows := display.NewRows(page, f)

	var err error
	switch format {
	case config.OutputJSON:
		err = renderProductsJSON(w, rows, pagination.NewPaginationMeta(state))
	case config.OutputNDJSON:
		err = renderProductsNDJSON(w, rows)
	default:
		err = renderProductsTable(w, rows, page)
	}
	if isBrokenPipe(err) {
		return nil
	}
	return err
}

func renderProductsJSON(w io.Writer, rows []display.Row, meta pagination.PaginationMeta) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(productsOutput{Products: rows, Pagination: meta}); err != nil {
		return fmt.Errorf("encoding products: %w", err)
	}
	return nil
}

func renderProductsNDJSON(w io.Writer, rows []display.Row) error {
	enc := json.NewEncoder(w)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("encoding product %d: %w", row.ID, err)
		}
	}
	return nil
}

func renderProductsTable(w io.Writer, rows []display.Row, page engine.Page) error {
	if page.Empty() {
		_, err := fmt.Fprintln(w, display.NoProducts)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tTITLE\tPRICE\tCATEGORY\tDESCRIPTION\tIMAGE")
	fmt.Fprintln(tw, "-\t--\t-----\t-----\t--------\t-----------\t-----")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			strconv.Itoa(r.Ordinal),
			strconv.Itoa(r.ID),
			truncate(r.Title, maxTitleLen),
			r.Price,
			r.Category,
			truncate(r.Description, maxDescriptionLen),
			r.ImageURL,
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}

	_, err := fmt.Fprintf(w, "\n%s (%d products)\n", display.PageIndicator(page), page.TotalItems)
	return err
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// isBrokenPipe reports whether err was caused by the reader closing the pipe,
// as when output is piped to head.
func isBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.EPIPE
	}
	return strings.Contains(err.Error(), "broken pipe")
}

package display

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders prices and counts for one locale and currency.
// A Formatter is not safe for concurrent use.
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	printer *message.Printer
	symbol  string
	scale   int
}

// NewFormatter creates a Formatter for tag and unit.
func NewFormatter(tag language.Tag, unit currency.Unit) *Formatter {
	p := message.NewPrinter(tag)
	scale, _ := currency.Standard.Rounding(unit)
	return &Formatter{
		tag:     tag,
		unit:    unit,
		printer: p,
		symbol:  strings.TrimSpace(p.Sprint(currency.NarrowSymbol(unit))),
		scale:   scale,
	}
}

// DefaultFormatter formats US dollars for American English.
func DefaultFormatter() *Formatter {
	return NewFormatter(language.AmericanEnglish, currency.USD)
}

// Price formats v with the currency symbol, grouping and the currency's
// standard number of decimals, e.g. "$1,234.50".
func (f *Formatter) Price(v float64) string {
	return f.symbol + f.printer.Sprint(number.Decimal(v, number.Scale(f.scale)))
}

// Count formats an integer with locale grouping.
func (f *Formatter) Count(n int) string {
	return f.printer.Sprint(number.Decimal(n))
}

// Currency returns the ISO code of the formatter's currency.
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

package converter

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders the one-line summary of a conversion. Decimal values
// are grouped with the locale's thousands separator.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter returns a Formatter for tag.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

// NewFormatterForLocale parses a BCP 47 locale such as "en" or "de-DE".
func NewFormatterForLocale(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return NewFormatter(tag), nil
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Format produces "<Label>: <original> > <Label>: <converted>.".
func (f *Formatter) Format(mode Mode, original, converted string) string {
	return fmt.Sprintf("%s: %s > %s: %s.",
		mode.Source().Label(), f.displayValue(mode.Source(), original),
		mode.Target().Label(), f.displayValue(mode.Target(), converted))
}

func (f *Formatter) displayValue(base Base, value string) string {
	switch base {
	case Decimal:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return value
		}
		return f.printer.Sprintf("%d", n)
	case Binary:
		return trimLeadingZeros(value)
	case Hex:
		return strings.ToUpper(value)
	default:
		return value
	}
}

func trimLeadingZeros(value string) string {
	trimmed := strings.TrimLeft(value, "0")
	if trimmed == "" && value != "" {
		return "0"
	}
	return trimmed
}

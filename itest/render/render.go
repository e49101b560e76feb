package render

import (
	"fmt"
	"unicode"

	dw "github.com/mattn/go-runewidth"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// MaxWidth is the maximum display width, in terminal columns, of a
// rendered value. Longer values are cut with a tail marker so a single
// bad value can't flood the diagnostic stream.
const MaxWidth = 120

const tail = "..."

// Control runes inside an asserted value would corrupt the diagnostic
// stream, so they get replaced before printing.
var sanitizer = runes.Map(func(r rune) rune {
	if unicode.IsControl(r) {
		return '�'
	}
	return r
})

// Display returns a single-line, printable representation of v for use
// in diagnostic messages.
func Display(v any) string {
	s := fmt.Sprint(v)
	if clean, _, err := transform.String(sanitizer, s); err == nil {
		s = clean
	}
	if dw.StringWidth(s) > MaxWidth {
		s = dw.Truncate(s, MaxWidth, tail)
	}
	return s
}

package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops combining marks (Unicode Mn).
// Category-based, so it covers every Portuguese diacritic the portal emits
// without a hardcoded accent table.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Clean turns a portal display name into its stable comparison key.
//
//	"Equações Diferenciais Parciais e Séries (EDPS)" -> "EQUACOES DIFERENCIAIS PARCIAIS E SERIES"
//
// Everything from the first "(" on is discarded, accents are stripped,
// whitespace runs collapse to a single space, and the result is upper-cased.
// Clean is idempotent and maps the empty string to itself.
func Clean(text string) string {
	if i := strings.IndexByte(text, '('); i >= 0 {
		text = text[:i]
	}

	stripped, _, err := transform.String(stripMarks, text)
	if err == nil {
		text = stripped
	}

	text = strings.Join(strings.Fields(text), " ")

	return strings.ToUpper(text)
}

// CleanAll applies Clean to every element, preserving order.
func CleanAll(texts []string) []string {
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		out = append(out, Clean(t))
	}
	return out
}

package sanitize

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// replacementChar substitutes characters the core PDF fonts cannot encode.
const replacementChar = '?'

// PDFText projects text onto the Latin-1 character set used by the core PDF
// fonts. Characters without a Latin-1 representation (emoji, CJK, symbols)
// become '?'; a few common typographic characters are folded to ASCII
// equivalents first so they survive the projection. Must run before PDF
// rendering so the writer never sees an unencodable rune.
func PDFText(text string) string {
	text = foldTypography(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if _, ok := charmap.ISO8859_1.EncodeRune(r); ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(replacementChar)
		}
	}
	return b.String()
}

// foldTypography maps common non-Latin-1 typographic characters to ASCII
// so content is preserved instead of replaced.
func foldTypography(text string) string {
	replacer := strings.NewReplacer(
		"‘", "'", // left single quote
		"’", "'", // right single quote
		"“", `"`, // left double quote
		"”", `"`, // right double quote
		"–", "-", // en dash
		"—", "-", // em dash
		"•", "-", // bullet
		"…", "...", // ellipsis
		" ", " ", // non-breaking space (in Latin-1, but normalize anyway)
	)
	return replacer.Replace(text)
}

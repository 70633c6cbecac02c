// Package rendering produces the text-only output PDF. No attempt is made
// to replicate the original resume's fonts or layout; the generated text is
// laid out as plain paragraphs in a core font.
package rendering

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/resume-tailor/internal/sanitize"
)

const (
	fontFamily = "Helvetica"
	fontSize   = 11
	lineHeight = 5
)

// TextPDF renders sanitized text into a new A4 PDF and returns its bytes.
// Input must already be Latin-1 safe (sanitize.PDFText); the renderer applies
// the projection again as a belt, since an unencodable rune corrupts output.
// Deterministic for identical text: the creation date is pinned.
func TextPDF(text string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Pin metadata dates so identical input yields identical bytes.
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", fontSize)

	translate := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.MultiCell(0, lineHeight, translate(sanitize.PDFText(text)), "", "L", false)

	if pdf.Err() {
		return nil, &RenderError{Message: "PDF layout failed", Cause: pdf.Error()}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "PDF serialization failed", Cause: err}
	}
	return buf.Bytes(), nil
}

// Package extraction pulls plain text out of uploaded resume PDFs.
package extraction

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Error represents a failure to extract text from an uploaded document.
// The document may be encrypted, corrupted, or contain no text layer at all
// (a scanned image). Extraction failures are terminal for a request; the
// caller surfaces the message and does not retry.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExtractText reads a PDF from memory and returns the concatenated text of
// all pages in page order. Returns *Error when the document cannot be read
// or yields no extractable text.
func ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &Error{Message: "empty document"}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "encrypted") {
			return "", &Error{Message: "document is password-protected", Cause: err}
		}
		return "", &Error{Message: "document is corrupted or not a PDF", Cause: err}
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", &Error{Message: "failed to read text layer", Cause: err}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", &Error{Message: "failed to read text layer", Cause: err}
	}

	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return "", &Error{Message: "no extractable text (image-only scan?)"}
	}

	return text, nil
}

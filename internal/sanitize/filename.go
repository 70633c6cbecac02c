// Package sanitize prepares generated content and filenames for safe output.
package sanitize

import "strings"

const (
	// maxComponentLength is the maximum length of a single filename component
	// (applicant name or position title) before the document type and extension
	// are appended.
	maxComponentLength = 50

	// maxFilenameLength is the hard cap on the assembled filename. Most
	// filesystems reject names longer than 255 bytes.
	maxFilenameLength = 255
)

// FilenameComponent sanitizes a single filename component such as an applicant
// name or a position title. Whitespace becomes underscores, everything outside
// the allow-list (alphanumeric, underscore, hyphen) is dropped, and the result
// is truncated to a safe maximum. The same input always produces the same output.
// Returns fallback if nothing survives sanitization.
func FilenameComponent(text, fallback string) string {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r == ' ' || r == '\t' || r == '\n':
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	component := b.String()
	if len(component) > maxComponentLength {
		component = component[:maxComponentLength]
	}
	component = strings.Trim(component, "_")
	if component == "" {
		return fallback
	}
	return component
}

// Filename assembles a download filename of the form
// <Name>_<Position>_<DocType>.<ext> from already unsafe inputs.
// The result contains only allow-listed characters and never exceeds
// the filesystem filename limit.
func Filename(applicantName, positionTitle, docType, ext string) string {
	name := FilenameComponent(applicantName, "Applicant")
	position := FilenameComponent(positionTitle, "Position")

	filename := name + "_" + position + "_" + docType + "." + ext
	if len(filename) > maxFilenameLength {
		// Trim the position component first since the name identifies the file.
		overflow := len(filename) - maxFilenameLength
		if len(position) > overflow {
			position = position[:len(position)-overflow]
			filename = name + "_" + position + "_" + docType + "." + ext
		} else {
			filename = filename[:maxFilenameLength]
		}
	}
	return filename
}

package generation

import "strings"

// Markers delimit the two documents inside the model's combined response.
// The prompt instructs the model to emit exactly this framing; anything
// else is a parse failure, not something to guess around.
const (
	MarkerResumeBegin = "===BEGIN TAILORED RESUME==="
	MarkerResumeEnd   = "===END TAILORED RESUME==="
	MarkerLetterBegin = "===BEGIN COVER LETTER==="
	MarkerLetterEnd   = "===END COVER LETTER==="
)

// SplitResponse splits the raw model response into the tailored resume text
// and the cover letter text. Returns *ParseError when a marker is missing,
// out of order, or a segment is empty. The resume block must come first;
// the cover letter markers are only searched for after the resume end
// marker, so a reordered response fails instead of being accepted.
func SplitResponse(raw string) (resumeText, coverLetterText string, err error) {
	text := stripCodeFence(raw)

	resumeText, rest, err := cutSegment(text, MarkerResumeBegin, MarkerResumeEnd, "tailored resume")
	if err != nil {
		return "", "", err
	}

	coverLetterText, _, err = cutSegment(rest, MarkerLetterBegin, MarkerLetterEnd, "cover letter")
	if err != nil {
		if !strings.Contains(rest, MarkerLetterBegin) && strings.Contains(text, MarkerLetterBegin) {
			return "", "", &ParseError{Message: "marker " + MarkerLetterBegin + " out of order"}
		}
		return "", "", err
	}

	return resumeText, coverLetterText, nil
}

// cutSegment returns the trimmed text between begin and end markers, plus
// the text remaining after the end marker.
func cutSegment(text, begin, end, label string) (string, string, error) {
	start := strings.Index(text, begin)
	if start < 0 {
		return "", "", &ParseError{Message: "missing marker " + begin}
	}
	rest := text[start+len(begin):]

	stop := strings.Index(rest, end)
	if stop < 0 {
		return "", "", &ParseError{Message: "missing marker " + end}
	}

	segment := strings.TrimSpace(rest[:stop])
	if segment == "" {
		return "", "", &ParseError{Message: "empty " + label + " segment"}
	}
	return segment, rest[stop+len(end):], nil
}

// stripCodeFence removes a markdown code fence wrapping the whole response.
// Models occasionally wrap output in ``` blocks even when told not to.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// Drop a language identifier on the opening fence line.
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if len(firstLine) < 20 && !strings.Contains(firstLine, " ") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

package generation

import "fmt"

// ParseError indicates the model response did not match the expected
// delimited format. The response is reported to the user rather than
// guessed at.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

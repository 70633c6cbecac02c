package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

// QuotaError indicates the provider rejected the request because the API
// quota is exhausted. The message is surfaced verbatim to the user; the
// intended mitigation is to wait or switch to a cheaper model tier. Never
// retried automatically.
type QuotaError struct {
	Model string
	Cause error
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("quota exceeded for model %s: %v", e.Model, e.Cause)
}

func (e *QuotaError) Unwrap() error {
	return e.Cause
}

// APICallError represents any other failure talking to the model API,
// including transient network errors. Surfaced to the user, never retried.
type APICallError struct {
	Model   string
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed (model %s): %s: %v", e.Model, e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed (model %s): %s", e.Model, e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// classifyError wraps a raw provider error into a QuotaError or APICallError.
func classifyError(model string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return &QuotaError{Model: model, Cause: err}
	}
	// The genai client sometimes reports quota exhaustion as a gRPC status
	// rather than a googleapi.Error.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "resource_exhausted") || strings.Contains(msg, "quota") {
		return &QuotaError{Model: model, Cause: err}
	}
	return &APICallError{Model: model, Message: "request failed", Cause: err}
}

// Package server provides the HTTP surface: the web form, the generation
// endpoint, and artifact downloads.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-tailor/internal/extraction"
	"github.com/jonathan/resume-tailor/internal/generation"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/rendering"
)

// HTTPStatus maps pipeline errors to HTTP status codes. Every error is
// surfaced to the user as a plain message; a failed request never affects
// subsequent requests.
func HTTPStatus(err error) int {
	var (
		extractErr *extraction.Error
		quotaErr   *llm.QuotaError
		apiErr     *llm.APICallError
		parseErr   *generation.ParseError
		renderErr  *rendering.RenderError
	)

	switch {
	case errors.As(err, &extractErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &quotaErr):
		return http.StatusTooManyRequests
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	case errors.As(err, &parseErr):
		return http.StatusBadGateway
	case errors.As(err, &renderErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

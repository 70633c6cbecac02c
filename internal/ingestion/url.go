// Package ingestion prepares resume and job posting inputs for prompt
// construction.
package ingestion

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/resume-tailor/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// URLOptions configures a job posting fetch.
type URLOptions struct {
	// Timeout bounds the HTTP request; zero means fetch.DefaultTimeout.
	Timeout    time.Duration
	UseBrowser bool
	Verbose    bool
}

// IngestFromURL fetches a job posting page, extracts the main text, and
// returns it cleaned. If UseBrowser is set and plain HTTP yields too little
// content, it falls back to headless browser rendering for SPA job boards.
// Blocking call bounded by the configured timeout; never retried.
func IngestFromURL(ctx context.Context, urlStr string, opts URLOptions) (string, error) {
	fetchOpts := fetch.DefaultOptions()
	if opts.Timeout > 0 {
		fetchOpts.Timeout = opts.Timeout
	}

	result, err := fetch.URL(ctx, urlStr, fetchOpts)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Fetched %s: %d bytes", urlStr, len(result.HTML))
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		if opts.Verbose {
			log.Printf("[VERBOSE] Content too short (%d chars), falling back to browser rendering", len(text))
		}
		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, opts.Verbose)
		if browserErr != nil {
			if opts.Verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", browserErr)
			}
		} else if rendered, extractErr := fetch.ExtractMainText(browserHTML, fetch.JobPostingSelectors()); extractErr == nil {
			text = rendered
		}
	}

	return CleanText(text), nil
}

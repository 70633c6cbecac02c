// Package pipeline provides the high-level orchestration for one document
// generation: extract, ingest, generate, sanitize, render.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/resume-tailor/internal/extraction"
	"github.com/jonathan/resume-tailor/internal/generation"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/sanitize"
)

// ProgressEvent represents a progress update during a run.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is called as each pipeline step starts.
type ProgressCallback func(event ProgressEvent)

// Options holds the inputs for one generation run. Exactly one of ResumePDF
// or ResumeText must be set; JobDescription is required; JobURL is optional.
type Options struct {
	ResumePDF      []byte
	ResumeText     string
	JobDescription string
	JobURL         string
	Tier           llm.ModelTier
	FetchTimeout   time.Duration
	UseBrowser     bool
	Verbose        bool
	OnProgress     ProgressCallback
}

// Result holds everything produced by a successful run.
type Result struct {
	ResumeText      string
	CoverLetterText string
	ResumeFilename  string
	LetterFilename  string
	ResumePDF       []byte
	CoverLetterTxt  []byte
	ApplicantName   string
	PositionTitle   string
	CompanyName     string
}

// emitProgress calls the progress callback if configured.
func emitProgress(opts *Options, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message})
	}
}

// Run executes the pipeline for one request. Steps run strictly in
// sequence; any failure halts the run before later steps execute, so an
// unreadable PDF never causes a model call. Nothing is retried.
func Run(ctx context.Context, client llm.Client, opts Options) (*Result, error) {
	if err := validateOptions(&opts); err != nil {
		return nil, err
	}

	// Step 1: extract resume text.
	emitProgress(&opts, "extract", "Extracting text from resume PDF")
	resumeText := opts.ResumeText
	if resumeText == "" {
		extracted, err := extraction.ExtractText(opts.ResumePDF)
		if err != nil {
			return nil, err
		}
		resumeText = extracted
	}
	resumeText = ingestion.CleanText(resumeText)
	if opts.Verbose {
		log.Printf("[pipeline] resume text: %d chars", len(resumeText))
	}

	// Step 2: optional job URL context. Failure is non-fatal; the prompt
	// carries a note instead, matching the manual workflow this replaces.
	urlContent := ""
	if opts.JobURL != "" {
		emitProgress(&opts, "fetch", "Fetching job posting URL")
		content, err := ingestion.IngestFromURL(ctx, opts.JobURL, ingestion.URLOptions{
			Timeout:    opts.FetchTimeout,
			UseBrowser: opts.UseBrowser,
			Verbose:    opts.Verbose,
		})
		if err != nil {
			log.Printf("[pipeline] job URL fetch failed: %v", err)
			urlContent = fmt.Sprintf("Could not fetch content from URL. Error: %v", err)
		} else {
			urlContent = content
		}
	}

	// Step 3: single model call, split into the two documents.
	emitProgress(&opts, "generate", "Generating tailored documents")
	generated, err := generation.Generate(ctx, client, generation.Input{
		ResumeText:     resumeText,
		JobDescription: opts.JobDescription,
		URLContent:     urlContent,
	}, opts.Tier)
	if err != nil {
		return nil, err
	}

	// Step 4: derive artifact names from detected metadata.
	meta := ingestion.ExtractMetadata(resumeText, opts.JobDescription)
	resumeFilename := sanitize.Filename(meta.ApplicantName, meta.PositionTitle, "Resume", "pdf")
	letterFilename := sanitize.Filename(meta.ApplicantName, meta.PositionTitle, "CoverLetter", "txt")

	// Step 5: render output artifacts.
	emitProgress(&opts, "render", "Rendering output files")
	pdfBytes, err := rendering.TextPDF(generated.ResumeText)
	if err != nil {
		return nil, err
	}

	return &Result{
		ResumeText:      generated.ResumeText,
		CoverLetterText: generated.CoverLetterText,
		ResumeFilename:  resumeFilename,
		LetterFilename:  letterFilename,
		ResumePDF:       pdfBytes,
		CoverLetterTxt:  []byte(generated.CoverLetterText),
		ApplicantName:   meta.ApplicantName,
		PositionTitle:   meta.PositionTitle,
		CompanyName:     meta.CompanyName,
	}, nil
}

// validateOptions checks that required inputs are present before any work
// happens.
func validateOptions(opts *Options) error {
	if len(opts.ResumePDF) == 0 && opts.ResumeText == "" {
		return fmt.Errorf("a resume is required")
	}
	if opts.JobDescription == "" {
		return fmt.Errorf("job description cannot be empty")
	}
	if opts.Tier == "" {
		opts.Tier = llm.TierStandard
	}
	return nil
}

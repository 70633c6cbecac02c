package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor/internal/artifacts"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/pipeline"
)

// maxUploadSize caps the multipart form, dominated by the resume PDF.
const maxUploadSize = 10 << 20 // 10 MiB

// GenerateRequest represents the text fields of the generation form.
type GenerateRequest struct {
	JobDescription string `validate:"required"`
	JobURL         string `validate:"omitempty,url"`
	Tier           string `validate:"omitempty,oneof=lite standard advanced"`
}

// GenerateResponse represents a successful generation.
type GenerateResponse struct {
	RunID           string `json:"run_id"`
	ResumeText      string `json:"resume_text"`
	CoverLetterText string `json:"cover_letter_text"`
	ResumeURL       string `json:"resume_url"`
	CoverLetterURL  string `json:"cover_letter_url"`
	ResumeFilename  string `json:"resume_filename"`
	LetterFilename  string `json:"cover_letter_filename"`
}

// parseGenerateForm reads the multipart form into pipeline options.
func (s *Server) parseGenerateForm(r *http.Request) (pipeline.Options, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return pipeline.Options{}, fmt.Errorf("invalid form upload: %w", err)
	}

	req := GenerateRequest{
		JobDescription: strings.TrimSpace(r.FormValue("job_description")),
		JobURL:         strings.TrimSpace(r.FormValue("job_url")),
		Tier:           strings.TrimSpace(r.FormValue("tier")),
	}
	if err := s.validate.Struct(req); err != nil {
		if req.JobDescription == "" {
			return pipeline.Options{}, fmt.Errorf("job description cannot be empty")
		}
		return pipeline.Options{}, fmt.Errorf("invalid form values: %w", err)
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("please upload your resume to continue")
	}
	defer func() { _ = file.Close() }()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return pipeline.Options{}, fmt.Errorf("resume must be a PDF file")
	}

	pdfBytes, err := io.ReadAll(file)
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("failed to read uploaded resume: %w", err)
	}

	tier := s.config.Tier
	if req.Tier != "" {
		parsed, err := llm.ParseTier(req.Tier)
		if err != nil {
			return pipeline.Options{}, err
		}
		tier = parsed
	}

	return pipeline.Options{
		ResumePDF:      pdfBytes,
		JobDescription: req.JobDescription,
		JobURL:         req.JobURL,
		Tier:           tier,
		FetchTimeout:   s.config.FetchTimeout,
		UseBrowser:     s.config.UseBrowser,
		Verbose:        s.config.Verbose,
	}, nil
}

// handleGenerate runs the pipeline synchronously for one form submission.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	opts, err := s.parseGenerateForm(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := pipeline.Run(r.Context(), s.client, opts)
	if err != nil {
		log.Printf("Generation failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	runID := s.store.Put(
		artifacts.Artifact{
			Filename:    result.ResumeFilename,
			ContentType: "application/pdf",
			Data:        result.ResumePDF,
		},
		artifacts.Artifact{
			Filename:    result.LetterFilename,
			ContentType: "text/plain; charset=utf-8",
			Data:        result.CoverLetterTxt,
		},
	)

	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		RunID:           runID.String(),
		ResumeText:      result.ResumeText,
		CoverLetterText: result.CoverLetterText,
		ResumeURL:       fmt.Sprintf("/artifacts/%s/resume", runID),
		CoverLetterURL:  fmt.Sprintf("/artifacts/%s/cover-letter", runID),
		ResumeFilename:  result.ResumeFilename,
		LetterFilename:  result.LetterFilename,
	})
}

// handleGenerateStream runs the pipeline and streams progress via SSE,
// ending with either a complete event carrying the response payload or an
// error event carrying the failure message.
func (s *Server) handleGenerateStream(w http.ResponseWriter, r *http.Request) {
	opts, err := s.parseGenerateForm(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	opts.OnProgress = func(event pipeline.ProgressEvent) {
		if err := sse.WriteEvent("step", event); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	}

	result, err := pipeline.Run(r.Context(), s.client, opts)
	if err != nil {
		log.Printf("Generation failed: %v", err)
		sse.WriteError(err.Error())
		return
	}

	runID := s.store.Put(
		artifacts.Artifact{Filename: result.ResumeFilename, ContentType: "application/pdf", Data: result.ResumePDF},
		artifacts.Artifact{Filename: result.LetterFilename, ContentType: "text/plain; charset=utf-8", Data: result.CoverLetterTxt},
	)

	sse.WriteComplete(GenerateResponse{
		RunID:           runID.String(),
		ResumeText:      result.ResumeText,
		CoverLetterText: result.CoverLetterText,
		ResumeURL:       fmt.Sprintf("/artifacts/%s/resume", runID),
		CoverLetterURL:  fmt.Sprintf("/artifacts/%s/cover-letter", runID),
		ResumeFilename:  result.ResumeFilename,
		LetterFilename:  result.LetterFilename,
	})
}

// handleDownloadResume serves the generated resume PDF.
func (s *Server) handleDownloadResume(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, func(entry *artifacts.Entry) artifacts.Artifact {
		return entry.Resume
	})
}

// handleDownloadCoverLetter serves the generated cover letter text file.
func (s *Server) handleDownloadCoverLetter(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, func(entry *artifacts.Entry) artifacts.Artifact {
		return entry.CoverLetter
	})
}

// serveArtifact looks up the run and writes the selected artifact as a
// download.
func (s *Server) serveArtifact(w http.ResponseWriter, r *http.Request, pick func(*artifacts.Entry) artifacts.Artifact) {
	idStr := r.PathValue("id")
	runID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID format")
		return
	}

	entry, err := s.store.Get(runID)
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, "Artifacts not found")
		return
	}

	artifact := pick(entry)
	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact.Data); err != nil {
		log.Printf("Error writing artifact %s: %v", artifact.Filename, err)
	}
}

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGenerateFlags() {
	resumePath = ""
	jobFile = ""
	jobURL = ""
	genOutDir = "."
	genTier = ""
	genAPIKey = ""
	genBrowser = false
	genVerbose = false
}

func TestRunGenerate_RequiresJobInput(t *testing.T) {
	resetGenerateFlags()
	resumePath = "resume.pdf"

	err := runGenerate(generateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --job or --job-url")
}

func TestRunGenerate_RequiresAPIKey(t *testing.T) {
	resetGenerateFlags()
	t.Setenv("GEMINI_API_KEY", "")
	resumePath = "resume.pdf"
	jobFile = "job.txt"

	err := runGenerate(generateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestRunGenerate_RejectsUnknownTier(t *testing.T) {
	resetGenerateFlags()
	resumePath = "resume.pdf"
	jobFile = "job.txt"
	genAPIKey = "test-key"
	genTier = "turbo"

	err := runGenerate(generateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown model tier")
}

func TestBuildGenerateOptions_JobURLOnly(t *testing.T) {
	resetGenerateFlags()

	posting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="job-description">
			Position: Backend Engineer
			Seeking a backend engineer skilled in distributed systems.
		</div></body></html>`))
	}))
	defer posting.Close()

	tmpDir := t.TempDir()
	resumePath = filepath.Join(tmpDir, "resume.pdf")
	require.NoError(t, os.WriteFile(resumePath, []byte("%PDF-fake"), 0o644))
	jobURL = posting.URL

	opts, err := buildGenerateOptions(context.Background())
	require.NoError(t, err)

	assert.Contains(t, opts.JobDescription, "Seeking a backend engineer")
	assert.Empty(t, opts.JobURL, "the posting is the description, not extra context")
	assert.NotEmpty(t, opts.ResumePDF)
}

func TestBuildGenerateOptions_JobURLOnlyFetchFailureIsFatal(t *testing.T) {
	resetGenerateFlags()

	tmpDir := t.TempDir()
	resumePath = filepath.Join(tmpDir, "resume.pdf")
	require.NoError(t, os.WriteFile(resumePath, []byte("%PDF-fake"), 0o644))
	jobURL = "http://127.0.0.1:1/job"

	_, err := buildGenerateOptions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch job posting")
}

func TestBuildGenerateOptions_JobFileKeepsURLAsContext(t *testing.T) {
	resetGenerateFlags()

	tmpDir := t.TempDir()
	resumePath = filepath.Join(tmpDir, "resume.pdf")
	require.NoError(t, os.WriteFile(resumePath, []byte("%PDF-fake"), 0o644))
	jobFile = filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(jobFile, []byte("Backend Engineer role at Acme"), 0o644))
	jobURL = "https://jobs.example.com/backend"

	opts, err := buildGenerateOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer role at Acme", opts.JobDescription)
	assert.Equal(t, "https://jobs.example.com/backend", opts.JobURL)
}

func TestGenerateCommand_Registered(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "generate")
	assert.Contains(t, names, "serve")
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonathan/resume-tailor/internal/artifacts"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient implements llm.Client for handler tests.
type fakeClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeClient) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

const modelResponse = `===BEGIN TAILORED RESUME===
Jane Doe
Backend engineer, tailored.
===END TAILORED RESUME===
===BEGIN COVER LETTER===
Dear Hiring Manager, I am thrilled to apply.
===END COVER LETTER===`

func newTestServer(client llm.Client) *Server {
	return New(Config{Port: 0, Tier: llm.TierStandard}, client)
}

// generateForm builds a multipart request body for /generate.
// resumeField controls whether the file part is included at all.
func generateForm(t *testing.T, jobDescription, jobURL string, includeResume bool, resumeName string, resumeData []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if includeResume {
		part, err := writer.CreateFormFile("resume", resumeName)
		require.NoError(t, err)
		_, err = part.Write(resumeData)
		require.NoError(t, err)
	}
	require.NoError(t, writer.WriteField("job_description", jobDescription))
	if jobURL != "" {
		require.NoError(t, writer.WriteField("job_url", jobURL))
	}
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestHandleGenerate_MissingResume(t *testing.T) {
	client := &fakeClient{response: modelResponse}
	server := newTestServer(client)

	body, contentType := generateForm(t, "Backend engineer role", "", false, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	server.handleGenerate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "upload your resume")
	assert.Equal(t, 0, client.calls)
}

func TestHandleGenerate_MissingJobDescription(t *testing.T) {
	client := &fakeClient{response: modelResponse}
	server := newTestServer(client)

	body, contentType := generateForm(t, "", "", true, "resume.pdf", []byte("%PDF-fake"))
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	server.handleGenerate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "job description cannot be empty")
	assert.Equal(t, 0, client.calls)
}

func TestHandleGenerate_NonPDFUpload(t *testing.T) {
	client := &fakeClient{response: modelResponse}
	server := newTestServer(client)

	body, contentType := generateForm(t, "Backend role", "", true, "resume.docx", []byte("zip"))
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	server.handleGenerate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, client.calls)
}

func TestHandleGenerate_CorruptPDF(t *testing.T) {
	client := &fakeClient{response: modelResponse}
	server := newTestServer(client)

	body, contentType := generateForm(t, "Backend role", "", true, "resume.pdf", []byte("not really a pdf"))
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	server.handleGenerate(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 0, client.calls, "extraction failure must halt before the model call")
}

func TestParseGenerateForm_ThreadsConfig(t *testing.T) {
	server := New(Config{
		Port:         0,
		Tier:         llm.TierStandard,
		FetchTimeout: 3 * time.Second,
		UseBrowser:   true,
	}, &fakeClient{})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("resume", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-fake"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("job_description", "Backend role"))
	require.NoError(t, writer.WriteField("tier", "lite"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/generate", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	opts, err := server.parseGenerateForm(req)
	require.NoError(t, err)
	assert.Equal(t, llm.TierLite, opts.Tier)
	assert.Equal(t, 3*time.Second, opts.FetchTimeout)
	assert.True(t, opts.UseBrowser)
}

func TestHandleDownload_UnknownRun(t *testing.T) {
	server := newTestServer(&fakeClient{})

	req := httptest.NewRequest(http.MethodGet, "/artifacts/8a3a1c2e-0000-0000-0000-000000000000/resume", nil)
	req.SetPathValue("id", "8a3a1c2e-0000-0000-0000-000000000000")
	w := httptest.NewRecorder()

	server.handleDownloadResume(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleDownload_InvalidID(t *testing.T) {
	server := newTestServer(&fakeClient{})

	req := httptest.NewRequest(http.MethodGet, "/artifacts/nope/resume", nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()

	server.handleDownloadResume(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDownload_ServesStoredArtifacts(t *testing.T) {
	server := newTestServer(&fakeClient{})

	runID := server.store.Put(
		artifacts.Artifact{
			Filename:    "Jane_Doe_Backend_Engineer_Resume.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.4 fake"),
		},
		artifacts.Artifact{
			Filename:    "Jane_Doe_Backend_Engineer_CoverLetter.txt",
			ContentType: "text/plain; charset=utf-8",
			Data:        []byte("Dear Hiring Manager"),
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/artifacts/"+runID.String()+"/resume", nil)
	req.SetPathValue("id", runID.String())
	w := httptest.NewRecorder()
	server.handleDownloadResume(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Jane_Doe_Backend_Engineer_Resume.pdf")
	assert.Equal(t, []byte("%PDF-1.4 fake"), w.Body.Bytes())

	req = httptest.NewRequest(http.MethodGet, "/artifacts/"+runID.String()+"/cover-letter", nil)
	req.SetPathValue("id", runID.String())
	w = httptest.NewRecorder()
	server.handleDownloadCoverLetter(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dear Hiring Manager", w.Body.String())
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(&fakeClient{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestHandleIndex(t *testing.T) {
	server := newTestServer(&fakeClient{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	server.handleIndex(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "job_description")
	assert.Contains(t, w.Body.String(), "resume")
}

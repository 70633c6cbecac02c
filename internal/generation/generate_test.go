package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient implements llm.Client with a canned response.
type fakeClient struct {
	response string
	err      error
	prompts  []string
	tiers    []llm.ModelTier
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.tiers = append(f.tiers, tier)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt(Input{
		ResumeText:     "Experienced backend engineer...",
		JobDescription: "Seeking a backend engineer skilled in distributed systems",
		URLContent:     "We value ownership.",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Experienced backend engineer...")
	assert.Contains(t, prompt, "Seeking a backend engineer skilled in distributed systems")
	assert.Contains(t, prompt, "We value ownership.")
	// Structure preservation directive and output contract must survive templating.
	assert.Contains(t, prompt, "DO NOT change the structure")
	assert.Contains(t, prompt, MarkerResumeBegin)
	assert.Contains(t, prompt, MarkerLetterEnd)
	assert.NotContains(t, prompt, "{{.")
}

func TestBuildPrompt_EmptyURLContent(t *testing.T) {
	prompt, err := BuildPrompt(Input{
		ResumeText:     "resume",
		JobDescription: "job",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "(none provided)")
}

func TestGenerate_Success(t *testing.T) {
	client := &fakeClient{response: wellFormedResponse()}

	result, err := Generate(context.Background(), client, Input{
		ResumeText:     "Experienced backend engineer...",
		JobDescription: "Seeking a backend engineer",
	}, llm.TierStandard)
	require.NoError(t, err)

	assert.Contains(t, result.ResumeText, "Experienced backend engineer")
	assert.Contains(t, result.CoverLetterText, "Dear Hiring Manager")
	require.Len(t, client.prompts, 1)
	assert.Equal(t, []llm.ModelTier{llm.TierStandard}, client.tiers)
}

func TestGenerate_ClientErrorPropagates(t *testing.T) {
	quotaErr := &llm.QuotaError{Model: "fake-model", Cause: errors.New("429")}
	client := &fakeClient{err: quotaErr}

	_, err := Generate(context.Background(), client, Input{ResumeText: "r", JobDescription: "j"}, llm.TierStandard)
	require.Error(t, err)

	var gotQuota *llm.QuotaError
	assert.True(t, errors.As(err, &gotQuota))
}

func TestGenerate_MalformedResponse(t *testing.T) {
	client := &fakeClient{response: "I could not follow the format, here is prose instead."}

	_, err := Generate(context.Background(), client, Input{ResumeText: "r", JobDescription: "j"}, llm.TierAdvanced)
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

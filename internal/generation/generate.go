// Package generation builds the model instruction and turns the combined
// response back into the two output documents.
package generation

import (
	"context"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
)

// promptFile is the embedded JSON file holding the generation templates.
const promptFile = "generation.json"

// Input carries everything the prompt needs for one generation.
type Input struct {
	ResumeText     string
	JobDescription string
	URLContent     string
}

// Result holds the two generated documents.
type Result struct {
	ResumeText      string
	CoverLetterText string
}

// BuildPrompt assembles the single combined instruction: structure
// preservation directive, job requirements, original resume text, and the
// delimited two-document output contract.
func BuildPrompt(in Input) (string, error) {
	template, err := prompts.Get(promptFile, "tailor_documents")
	if err != nil {
		return "", err
	}

	urlContent := in.URLContent
	if urlContent == "" {
		urlContent = "(none provided)"
	}

	return prompts.Format(template, map[string]string{
		"ResumeText":     in.ResumeText,
		"JobDescription": in.JobDescription,
		"URLContent":     urlContent,
	}), nil
}

// Generate performs one model call and splits the response into the tailored
// resume and the cover letter. No retries: quota and network failures
// propagate as the client's typed errors, format violations as *ParseError.
func Generate(ctx context.Context, client llm.Client, in Input, tier llm.ModelTier) (*Result, error) {
	prompt, err := BuildPrompt(in)
	if err != nil {
		return nil, err
	}

	raw, err := client.GenerateContent(ctx, prompt, tier)
	if err != nil {
		return nil, err
	}

	resumeText, coverLetterText, err := SplitResponse(raw)
	if err != nil {
		return nil, err
	}

	return &Result{ResumeText: resumeText, CoverLetterText: coverLetterText}, nil
}

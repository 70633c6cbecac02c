package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Tailor a resume and cover letter from the command line",
	Long:  "Run the full pipeline once without the web server: read a resume PDF and a job description, call the model, and write the tailored resume PDF and cover letter text file to disk.",
	RunE:  runGenerate,
}

var (
	resumePath string
	jobFile    string
	jobURL     string
	genOutDir  string
	genTier    string
	genAPIKey  string
	genBrowser bool
	genVerbose bool
)

func init() {
	generateCmd.Flags().StringVarP(&resumePath, "resume", "r", "", "Path to the resume PDF (required)")
	generateCmd.Flags().StringVarP(&jobFile, "job", "j", "", "Path to a text file containing the job description")
	generateCmd.Flags().StringVarP(&jobURL, "job-url", "u", "", "URL of the job posting")
	generateCmd.Flags().StringVarP(&genOutDir, "out", "o", ".", "Output directory")
	generateCmd.Flags().StringVar(&genTier, "tier", "", "Model tier: lite, standard, or advanced")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	generateCmd.Flags().BoolVar(&genBrowser, "browser", false, "Use a headless browser for URL fetching")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Verbose output")

	generateCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if jobFile == "" && jobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}

	apiKey := genAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts, err := buildGenerateOptions(ctx)
	if err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if genVerbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Step, event.Message)
		}
	}

	result, err := pipeline.Run(ctx, client, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(genOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	resumeOut := filepath.Join(genOutDir, result.ResumeFilename)
	if err := os.WriteFile(resumeOut, result.ResumePDF, 0o644); err != nil {
		return fmt.Errorf("failed to write resume PDF: %w", err)
	}
	letterOut := filepath.Join(genOutDir, result.LetterFilename)
	if err := os.WriteFile(letterOut, result.CoverLetterTxt, 0o644); err != nil {
		return fmt.Errorf("failed to write cover letter: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Tailored resume: %s\n", resumeOut)
	fmt.Fprintf(os.Stdout, "Cover letter: %s\n", letterOut)

	return nil
}

// buildGenerateOptions assembles the pipeline inputs from the flags. With
// --job the file content is the job description and --job-url is extra
// context; with only --job-url the fetched posting text becomes the job
// description itself, and a fetch failure is fatal.
func buildGenerateOptions(ctx context.Context) (pipeline.Options, error) {
	tier, err := llm.ParseTier(genTier)
	if err != nil {
		return pipeline.Options{}, err
	}

	resumePDF, err := os.ReadFile(resumePath)
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("failed to read resume: %w", err)
	}

	opts := pipeline.Options{
		ResumePDF:  resumePDF,
		Tier:       tier,
		UseBrowser: genBrowser,
		Verbose:    genVerbose,
	}

	if jobFile != "" {
		data, err := os.ReadFile(jobFile)
		if err != nil {
			return pipeline.Options{}, fmt.Errorf("failed to read job description: %w", err)
		}
		opts.JobDescription = string(data)
		opts.JobURL = jobURL
		return opts, nil
	}

	content, err := ingestion.IngestFromURL(ctx, jobURL, ingestion.URLOptions{
		UseBrowser: genBrowser,
		Verbose:    genVerbose,
	})
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("failed to fetch job posting from %s: %w", jobURL, err)
	}
	opts.JobDescription = content
	return opts, nil
}

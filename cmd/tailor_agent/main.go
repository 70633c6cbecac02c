// Package main provides the entry point for the resume tailor service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailor_agent",
	Short: "AI resume and cover letter tailoring service",
	Long:  "Tailor Agent rewrites an uploaded resume and drafts a matching cover letter for a specific job posting using the Gemini API, producing downloadable PDF and text outputs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

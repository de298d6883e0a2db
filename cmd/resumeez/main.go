// Package main provides the entry point for the ResumeEZ skill gap
// analysis CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumeez",
	Short: "ResumeEZ skill gap analysis",
	Long:  "ResumeEZ compares resumes against job descriptions using a canonical skill ontology, producing match scores, gap reports and phased learning roadmaps.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

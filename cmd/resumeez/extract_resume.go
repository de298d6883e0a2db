package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thapanirajan/ResumeEZ-backend/internal/analysis"
)

var extractResumeCmd = &cobra.Command{
	Use:   "extract-resume",
	Short: "Extract canonical skills from a structured resume",
	Long:  "Extract canonical skills with years of experience from a structured resume JSON file.",
	RunE:  runExtractResume,
}

var (
	extractResumeInputFile  string
	extractResumeOutputFile string
	extractResumeOntology   string
)

func init() {
	extractResumeCmd.Flags().StringVarP(&extractResumeInputFile, "in", "i", "", "Path to resume JSON file (required)")
	extractResumeCmd.Flags().StringVarP(&extractResumeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractResumeCmd.Flags().StringVar(&extractResumeOntology, "ontology", "", "Path to ontology seed file")
	_ = extractResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractResumeCmd)
}

func runExtractResume(cmd *cobra.Command, _ []string) error {
	cache, err := loadSnapshot(cmd.Context(), extractResumeOntology)
	if err != nil {
		return err
	}

	var resume map[string]any
	if err := readJSONInput(extractResumeInputFile, &resume); err != nil {
		return err
	}

	skills := analysis.NewAnalyzer(cache).ExtractResumeSkills(resume)

	_, _ = fmt.Fprintf(os.Stdout, "Extracted %d skills\n", len(skills))
	return writeJSONOutput(extractResumeOutputFile, map[string]any{"skills": skills})
}

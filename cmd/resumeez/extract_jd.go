package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thapanirajan/ResumeEZ-backend/internal/analysis"
	"github.com/thapanirajan/ResumeEZ-backend/internal/jd"
	"github.com/thapanirajan/ResumeEZ-backend/internal/observability"
	"github.com/thapanirajan/ResumeEZ-backend/internal/scoring"
)

var extractJDCmd = &cobra.Command{
	Use:   "extract-jd",
	Short: "Extract canonical skills from a job description",
	Long:  "Extract canonical skills with sections and computed weights from a job description text or HTML file.",
	RunE:  runExtractJD,
}

var (
	extractJDInputFile  string
	extractJDOutputFile string
	extractJDOntology   string
	extractJDHTML       bool
	extractJDVerbose    bool
)

func init() {
	extractJDCmd.Flags().StringVarP(&extractJDInputFile, "in", "i", "", "Path to job description file (required)")
	extractJDCmd.Flags().StringVarP(&extractJDOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractJDCmd.Flags().StringVar(&extractJDOntology, "ontology", "", "Path to ontology seed file")
	extractJDCmd.Flags().BoolVar(&extractJDHTML, "html", false, "Treat the input as an HTML job posting")
	extractJDCmd.Flags().BoolVarP(&extractJDVerbose, "verbose", "v", false, "Print a summary of the extracted skills")
	_ = extractJDCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractJDCmd)
}

func runExtractJD(cmd *cobra.Command, _ []string) error {
	cache, err := loadSnapshot(cmd.Context(), extractJDOntology)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(extractJDInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	text := string(raw)
	if extractJDHTML {
		text, err = jd.HTMLToText(text)
		if err != nil {
			return fmt.Errorf("failed to convert HTML input: %w", err)
		}
	}

	extraction := analysis.NewAnalyzer(cache).ExtractJDSkills(text)
	extraction.Skills = scoring.ComputeJDWeights(extraction.Skills, extraction.Normalized)

	if extractJDVerbose {
		observability.NewPrinter(os.Stderr).PrintJDExtraction(&extraction)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Extracted %d skills\n", len(extraction.Skills))
	return writeJSONOutput(extractJDOutputFile, extraction)
}

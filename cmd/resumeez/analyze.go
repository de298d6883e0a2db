package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thapanirajan/ResumeEZ-backend/internal/analysis"
	"github.com/thapanirajan/ResumeEZ-backend/internal/jd"
	"github.com/thapanirajan/ResumeEZ-backend/internal/observability"
	"github.com/thapanirajan/ResumeEZ-backend/internal/schemas"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a full skill gap analysis",
	Long:  "Compare a resume against a job description: extraction, matching, scoring, gap report and learning roadmap in one pass.",
	RunE:  runAnalyze,
}

var (
	analyzeJDFile     string
	analyzeResumeFile string
	analyzeOutputFile string
	analyzeOntology   string
	analyzeHTML       bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJDFile, "jd", "", "Path to job description file (required)")
	analyzeCmd.Flags().StringVar(&analyzeResumeFile, "resume", "", "Path to resume JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeOntology, "ontology", "", "Path to ontology seed file")
	analyzeCmd.Flags().BoolVar(&analyzeHTML, "html", false, "Treat the job description as an HTML posting")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed summaries of each stage")
	_ = analyzeCmd.MarkFlagRequired("jd")
	_ = analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cache, err := loadSnapshot(cmd.Context(), analyzeOntology)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(analyzeJDFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	jdText := string(raw)
	if analyzeHTML {
		jdText, err = jd.HTMLToText(jdText)
		if err != nil {
			return fmt.Errorf("failed to convert HTML job description: %w", err)
		}
	}

	var resume map[string]any
	if err := readJSONInput(analyzeResumeFile, &resume); err != nil {
		return err
	}

	result := analysis.NewAnalyzer(cache).Analyze(jdText, resume)

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintMatchSummary(result)
		printer.PrintRoadmap(&result.Roadmap)
	}

	// Validate the output shape before writing it anywhere
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	if err := schemas.ValidateAnalysis(jsonBytes); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("analysis does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate analysis against schema: %v\n", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Match: %.1f%%  matched=%d missing=%d extra=%d\n",
		result.MatchPercentage, len(result.Matched), len(result.Missing), len(result.Extra))
	return writeJSONOutput(analyzeOutputFile, result)
}

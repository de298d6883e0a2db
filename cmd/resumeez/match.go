package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thapanirajan/ResumeEZ-backend/internal/analysis"
	"github.com/thapanirajan/ResumeEZ-backend/internal/scoring"
	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match extracted resume skills against extracted JD skills",
	Long:  "Match the output of extract-resume against the output of extract-jd, producing matched, missing and extra skills with scores.",
	RunE:  runMatch,
}

var (
	matchJDFile     string
	matchResumeFile string
	matchOutputFile string
	matchOntology   string
)

func init() {
	matchCmd.Flags().StringVar(&matchJDFile, "jd", "", "Path to extract-jd output JSON (required)")
	matchCmd.Flags().StringVar(&matchResumeFile, "resume", "", "Path to extract-resume output JSON (required)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().StringVar(&matchOntology, "ontology", "", "Path to ontology seed file")
	_ = matchCmd.MarkFlagRequired("jd")
	_ = matchCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cache, err := loadSnapshot(cmd.Context(), matchOntology)
	if err != nil {
		return err
	}

	var extraction types.JDExtraction
	if err := readJSONInput(matchJDFile, &extraction); err != nil {
		return err
	}

	var resumeOut struct {
		Skills []types.ResumeSkill `json:"skills"`
	}
	if err := readJSONInput(matchResumeFile, &resumeOut); err != nil {
		return err
	}

	jdSkills := scoring.EnsureComputedWeights(extraction.Skills)

	result := analysis.NewAnalyzer(cache).MatchSkills(resumeOut.Skills, jdSkills)
	summary := scoring.ComputeScores(result.Matched, jdSkills)

	_, _ = fmt.Fprintf(os.Stdout, "Match: %.1f%%  matched=%d missing=%d extra=%d\n",
		summary.MatchPercentage, len(result.Matched), len(result.Missing), len(result.Extra))
	return writeJSONOutput(matchOutputFile, map[string]any{
		"matched": result.Matched,
		"missing": result.Missing,
		"extra":   result.Extra,
		"scores":  summary,
	})
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thapanirajan/ResumeEZ-backend/internal/analysis"
	"github.com/thapanirajan/ResumeEZ-backend/internal/scoring"
	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Build a phased learning roadmap from missing skills",
	Long:  "Build a three-phase learning roadmap from a missing-skills JSON file, expanding prerequisites from the ontology.",
	RunE:  runRoadmap,
}

var (
	roadmapInputFile  string
	roadmapOutputFile string
	roadmapOntology   string
	roadmapKnownIDs   []string
)

func init() {
	roadmapCmd.Flags().StringVarP(&roadmapInputFile, "in", "i", "", "Path to missing-skills JSON file (required)")
	roadmapCmd.Flags().StringVarP(&roadmapOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	roadmapCmd.Flags().StringVar(&roadmapOntology, "ontology", "", "Path to ontology seed file")
	roadmapCmd.Flags().StringSliceVar(&roadmapKnownIDs, "known", nil, "Skill IDs already known (excluded from prerequisite expansion)")
	_ = roadmapCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(cmd *cobra.Command, _ []string) error {
	cache, err := loadSnapshot(cmd.Context(), roadmapOntology)
	if err != nil {
		return err
	}

	var missing []types.MissingSkill
	if err := readJSONInput(roadmapInputFile, &missing); err != nil {
		return err
	}

	byID := make(map[string]types.MissingSkill, len(missing))
	for _, m := range missing {
		if _, ok := byID[m.SkillID]; !ok {
			byID[m.SkillID] = m
		}
	}

	known := make(map[string]bool, len(roadmapKnownIDs))
	for _, id := range roadmapKnownIDs {
		known[id] = true
	}

	roadmap := analysis.NewAnalyzer(cache).BuildRoadmap(scoring.RankMissing(byID), known)

	total := len(roadmap.Phase1Core) + len(roadmap.Phase2Primary) + len(roadmap.Phase3Advanced)
	_, _ = fmt.Fprintf(os.Stdout, "Roadmap: %d skills across 3 phases\n", total)
	return writeJSONOutput(roadmapOutputFile, roadmap)
}

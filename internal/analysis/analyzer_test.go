package analysis

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thapanirajan/ResumeEZ-backend/internal/ontology"
	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

func testAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	cache := ontology.NewCache(&ontology.Catalog{
		Skills: []types.Skill{
			{ID: "python", CanonicalName: "Python", Category: types.CategoryLanguage, BaseWeight: 1.0},
			{ID: "docker", CanonicalName: "Docker", Category: types.CategoryTool, BaseWeight: 0.9},
			{ID: "postgresql", CanonicalName: "PostgreSQL", Category: types.CategoryDatabase, BaseWeight: 0.9},
			{ID: "react", CanonicalName: "React", Category: types.CategoryFramework, BaseWeight: 0.9},
			{ID: "linux", CanonicalName: "Linux", Category: types.CategoryTool, BaseWeight: 0.8},
			{ID: "communication", CanonicalName: "Communication", Category: types.CategorySoft, BaseWeight: 0.5},
		},
		Synonyms: []ontology.SynonymRow{
			{SkillID: "postgresql", Synonym: "postgres"},
		},
		Prerequisites: []ontology.PrerequisiteRow{
			{SkillID: "docker", PrerequisiteID: "linux"},
		},
	})
	return NewAnalyzer(cache)
}

const analyzerJD = `Requirements:
Python and Docker.
PostgreSQL experience.

Nice to have:
Communication.
`

var analyzerResume = map[string]any{
	"skills": []any{
		map[string]any{"name": "Python", "years": 4.0},
		"postgres",
		"React",
	},
}

func TestAnalyze_FullPipeline(t *testing.T) {
	a := testAnalyzer(t)

	result := a.Analyze(analyzerJD, analyzerResume)
	require.NotNil(t, result)

	assert.Len(t, result.JDHash, 64)
	assert.Greater(t, result.MatchPercentage, 0.0)
	assert.Less(t, result.MatchPercentage, 100.0)
	require.NotNil(t, result.HardSkillMatch)
	require.NotNil(t, result.SoftSkillMatch)
	assert.Zero(t, *result.SoftSkillMatch)

	matchedNames := namesOfMatched(result.Matched)
	assert.ElementsMatch(t, []string{"Python", "PostgreSQL"}, matchedNames)

	missingNames := namesOfMissing(result.Missing)
	assert.ElementsMatch(t, []string{"Docker", "Communication"}, missingNames)

	require.Len(t, result.Extra, 1)
	assert.Equal(t, "React", result.Extra[0].Name)

	assert.NotEmpty(t, result.GapReport)
	assert.False(t, result.CreatedAt.IsZero())
	assert.Equal(t, time.UTC, result.CreatedAt.Location())
}

func TestAnalyze_MatchedSortedByWeightedScore(t *testing.T) {
	a := testAnalyzer(t)

	result := a.Analyze(analyzerJD, analyzerResume)

	sorted := sort.SliceIsSorted(result.Matched, func(i, j int) bool {
		if result.Matched[i].WeightedScore != result.Matched[j].WeightedScore {
			return result.Matched[i].WeightedScore > result.Matched[j].WeightedScore
		}
		return result.Matched[i].Name < result.Matched[j].Name
	})
	assert.True(t, sorted)
}

func TestAnalyze_MissingRankedByPriority(t *testing.T) {
	a := testAnalyzer(t)

	result := a.Analyze(analyzerJD, analyzerResume)

	require.Len(t, result.Missing, 2)
	// Docker (required tool) outranks Communication (preferred soft skill).
	assert.Equal(t, "Docker", result.Missing[0].Name)
	assert.Equal(t, "Communication", result.Missing[1].Name)
	assert.Greater(t, result.Missing[0].PriorityScore, result.Missing[1].PriorityScore)
}

func TestAnalyze_RoadmapUsesResumeSkillsAsKnown(t *testing.T) {
	a := testAnalyzer(t)

	result := a.Analyze(analyzerJD, analyzerResume)

	// Linux is Docker's prerequisite and absent from the resume, so it
	// shows up as a core learning step.
	coreIDs := make([]string, 0)
	for _, s := range result.Roadmap.Phase1Core {
		coreIDs = append(coreIDs, s.SkillID)
	}
	assert.Contains(t, coreIDs, "linux")

	for _, phase := range [][]types.RoadmapSkill{
		result.Roadmap.Phase1Core,
		result.Roadmap.Phase2Primary,
		result.Roadmap.Phase3Advanced,
	} {
		for _, s := range phase {
			assert.NotEqual(t, "python", s.SkillID)
			assert.NotEqual(t, "postgresql", s.SkillID)
		}
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := testAnalyzer(t)

	first := a.Analyze(analyzerJD, analyzerResume)
	first.CreatedAt = time.Time{}
	for i := 0; i < 5; i++ {
		next := a.Analyze(analyzerJD, analyzerResume)
		next.CreatedAt = time.Time{}
		assert.Equal(t, first, next)
	}
}

func TestExtractJDSkills_DelegatesWithSections(t *testing.T) {
	a := testAnalyzer(t)

	extraction := a.ExtractJDSkills(analyzerJD)

	bySection := make(map[string]types.Section)
	for _, s := range extraction.Skills {
		bySection[s.ID] = s.Section
	}
	assert.Equal(t, types.SectionRequired, bySection["python"])
	assert.Equal(t, types.SectionPreferred, bySection["communication"])
}

func TestMatchSkills_EmptyInputs(t *testing.T) {
	a := testAnalyzer(t)

	result := a.MatchSkills(nil, nil)

	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
	assert.Empty(t, result.Extra)
}

func namesOfMatched(skills []types.MatchedSkill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

func namesOfMissing(skills []types.MissingSkill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

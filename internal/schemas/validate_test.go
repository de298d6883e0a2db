package schemas

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

func TestValidateCatalog_Valid(t *testing.T) {
	doc := []byte(`{
		"skills": [
			{"id": "python", "canonical_name": "Python", "category": "language", "base_weight": 1.0}
		],
		"synonyms": [{"skill_id": "python", "synonym": "python3"}],
		"prerequisites": [{"skill_id": "kubernetes", "prerequisite_id": "docker"}],
		"subtopics": [{"skill_id": "python", "subtopic": "Generators", "order_index": 0}]
	}`)

	assert.NoError(t, ValidateCatalog(doc))
}

func TestValidateCatalog_SkillsOnly(t *testing.T) {
	doc := []byte(`{"skills": []}`)
	assert.NoError(t, ValidateCatalog(doc))
}

func TestValidateCatalog_MissingSkills(t *testing.T) {
	err := ValidateCatalog([]byte(`{"synonyms": []}`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "(root)", verr.Errors[0].Field)
	assert.Contains(t, verr.Errors[0].Message, "skills")
}

func TestValidateCatalog_SkillMissingBaseWeight(t *testing.T) {
	doc := []byte(`{
		"skills": [{"id": "python", "canonical_name": "Python", "category": "language"}]
	}`)

	err := ValidateCatalog(doc)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Errors)
	assert.Contains(t, verr.Errors[0].Field, "skills.0")
}

func TestValidateCatalog_MalformedJSON(t *testing.T) {
	err := ValidateCatalog([]byte(`{"skills": `))
	assert.ErrorContains(t, err, "schema validation failed during load")
}

func TestValidateAnalysis_Valid(t *testing.T) {
	hard := 80.0
	analysis := types.Analysis{
		JDHash:          strings.Repeat("ab", 32),
		MatchPercentage: 66.7,
		HardSkillMatch:  &hard,
		Matched: []types.MatchedSkill{
			{Name: "Python", SkillID: "python", Category: "language", MatchType: types.MatchExact, Confidence: 1.0, Years: 4, WeightedScore: 1.65},
		},
		Missing: []types.MissingSkill{
			{Name: "Docker", SkillID: "docker", Category: "tool", ComputedWeight: 1.35, BaseWeight: 0.9, Confidence: 1.0, Section: types.SectionRequired, PriorityScore: 2.03},
		},
		Extra: []types.ExtraSkill{
			{Name: "React", SkillID: "react", Category: "framework"},
		},
		GapReport: "Overall match: 66.7%.",
		Roadmap: types.Roadmap{
			Phase1Core:     []types.RoadmapSkill{},
			Phase2Primary:  []types.RoadmapSkill{{Name: "Docker", SkillID: "docker", Category: "tool", PriorityScore: 2.03, Subtopics: []string{"Images"}}},
			Phase3Advanced: []types.RoadmapSkill{},
		},
		CreatedAt: time.Now().UTC(),
	}

	doc, err := json.Marshal(analysis)
	require.NoError(t, err)
	assert.NoError(t, ValidateAnalysis(doc))
}

func TestValidateAnalysis_BadHashAndMatchType(t *testing.T) {
	doc := []byte(`{
		"jd_hash": "not-a-hash",
		"match_percentage": 50,
		"matched_skills": [
			{"name": "Python", "canonical_id": "python", "category": "language", "match_type": "partial", "confidence": 1.0, "weighted_score": 1.0}
		],
		"missing_skills": [],
		"extra_skills": [],
		"gap_report": "",
		"roadmap": {"phase_1_core": [], "phase_2_primary": [], "phase_3_advanced": []}
	}`)

	err := ValidateAnalysis(doc)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	fields := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "jd_hash")
	assert.Contains(t, fields, "matched_skills.0.match_type")
}

func TestValidationError_Format(t *testing.T) {
	verr := &ValidationError{Errors: []FieldError{
		{Field: "jd_hash", Message: "Does not match pattern"},
		{Field: "(root)", Message: "skills is required"},
	}}

	msg := verr.Error()
	assert.Contains(t, msg, "validation failed:")
	assert.Contains(t, msg, "1. jd_hash: Does not match pattern")
	assert.Contains(t, msg, "2. (root): skills is required")
}

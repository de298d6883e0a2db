package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

func weightedJDSkill(id, category string, weight float64) types.JDSkill {
	return types.JDSkill{
		Skill:          types.Skill{ID: id, CanonicalName: id, Category: category, BaseWeight: weight},
		MatchType:      types.MatchExact,
		Confidence:     1.0,
		Section:        types.SectionGeneral,
		ComputedWeight: weight,
	}
}

func matchedSkill(id, category string, score float64) types.MatchedSkill {
	return types.MatchedSkill{
		Name:          id,
		SkillID:       id,
		Category:      category,
		MatchType:     types.MatchExact,
		Confidence:    1.0,
		WeightedScore: score,
	}
}

func TestComputeScores_OverallPercentage(t *testing.T) {
	jd := []types.JDSkill{
		weightedJDSkill("python", types.CategoryLanguage, 1.0),
		weightedJDSkill("docker", types.CategoryTool, 1.0),
	}
	matched := map[string]types.MatchedSkill{
		"python": matchedSkill("python", types.CategoryLanguage, 1.0),
	}

	summary := ComputeScores(matched, jd)

	assert.Equal(t, 50.0, summary.MatchPercentage)
}

func TestComputeScores_SaturatesAtHundred(t *testing.T) {
	jd := []types.JDSkill{weightedJDSkill("python", types.CategoryLanguage, 1.0)}
	// Experience multiplier pushed the weighted score above the JD weight
	matched := map[string]types.MatchedSkill{
		"python": matchedSkill("python", types.CategoryLanguage, 1.2),
	}

	summary := ComputeScores(matched, jd)

	assert.Equal(t, 100.0, summary.MatchPercentage)
	require.NotNil(t, summary.HardSkillMatch)
	assert.Equal(t, 100.0, *summary.HardSkillMatch)
}

func TestComputeScores_Partitions(t *testing.T) {
	jd := []types.JDSkill{
		weightedJDSkill("python", types.CategoryLanguage, 2.0),
		weightedJDSkill("communication", types.CategorySoft, 1.0),
	}
	matched := map[string]types.MatchedSkill{
		"python": matchedSkill("python", types.CategoryLanguage, 1.0),
	}

	summary := ComputeScores(matched, jd)

	require.NotNil(t, summary.HardSkillMatch)
	require.NotNil(t, summary.SoftSkillMatch)
	assert.Equal(t, 50.0, *summary.HardSkillMatch)
	assert.Equal(t, 0.0, *summary.SoftSkillMatch)
	assert.InDelta(t, 33.3, summary.MatchPercentage, 0.01)
}

func TestComputeScores_NilPartitionWhenNoWeight(t *testing.T) {
	jd := []types.JDSkill{weightedJDSkill("python", types.CategoryLanguage, 1.0)}

	summary := ComputeScores(nil, jd)

	assert.Equal(t, 0.0, summary.MatchPercentage)
	assert.NotNil(t, summary.HardSkillMatch)
	// No soft skills in the JD: a soft percentage would be meaningless
	assert.Nil(t, summary.SoftSkillMatch)
}

func TestComputeScores_EmptyJD(t *testing.T) {
	summary := ComputeScores(nil, nil)

	assert.Equal(t, 0.0, summary.MatchPercentage)
	assert.Nil(t, summary.HardSkillMatch)
	assert.Nil(t, summary.SoftSkillMatch)
}

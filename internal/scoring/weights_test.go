package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

func jdSkillIn(id, name string, base float64, section types.Section) types.JDSkill {
	return types.JDSkill{
		Skill:      types.Skill{ID: id, CanonicalName: name, Category: types.CategoryLanguage, BaseWeight: base},
		MatchType:  types.MatchExact,
		Confidence: 1.0,
		Section:    section,
	}
}

func TestComputeJDWeights_SectionBoost(t *testing.T) {
	skills := []types.JDSkill{
		jdSkillIn("a", "Alpha", 1.0, types.SectionRequired),
		jdSkillIn("b", "Beta", 1.0, types.SectionPreferred),
		jdSkillIn("c", "Gamma", 1.0, types.SectionGeneral),
	}

	out := ComputeJDWeights(skills, "alpha beta gamma")

	assert.Equal(t, 1.5, out[0].ComputedWeight)
	assert.Equal(t, 0.8, out[1].ComputedWeight)
	assert.Equal(t, 1.0, out[2].ComputedWeight)
}

func TestComputeJDWeights_FrequencyBoost(t *testing.T) {
	skills := []types.JDSkill{jdSkillIn("python", "Python", 1.0, types.SectionGeneral)}

	once := ComputeJDWeights(skills, "python")
	twice := ComputeJDWeights(skills, "python and python")
	thrice := ComputeJDWeights(skills, "python python python")
	many := ComputeJDWeights(skills, "python python python python python")

	assert.Equal(t, 1.0, once[0].ComputedWeight)
	assert.Equal(t, 1.1, twice[0].ComputedWeight)
	assert.Equal(t, 1.2, thrice[0].ComputedWeight)
	// Capped at three mentions
	assert.Equal(t, 1.2, many[0].ComputedWeight)
}

func TestComputeJDWeights_CombinedAndRounded(t *testing.T) {
	skills := []types.JDSkill{jdSkillIn("python", "Python", 0.9, types.SectionRequired)}

	out := ComputeJDWeights(skills, "python twice: python")

	// 0.9 x 1.1 frequency x 1.5 section = 1.485
	assert.Equal(t, 1.485, out[0].ComputedWeight)
}

func TestComputeJDWeights_ZeroMentionsStillWeighted(t *testing.T) {
	// A fuzzy-matched skill whose canonical name never appears verbatim
	skills := []types.JDSkill{jdSkillIn("postgresql", "PostgreSQL", 0.8, types.SectionGeneral)}

	out := ComputeJDWeights(skills, "we use postgres")

	assert.Equal(t, 0.8, out[0].ComputedWeight)
}

func TestComputeJDWeights_DoesNotMutateInput(t *testing.T) {
	skills := []types.JDSkill{jdSkillIn("python", "Python", 1.0, types.SectionRequired)}

	out := ComputeJDWeights(skills, "python")

	require.NotSame(t, &skills[0], &out[0])
	assert.Zero(t, skills[0].ComputedWeight)
	assert.Equal(t, 1.5, out[0].ComputedWeight)
}

func TestEnsureComputedWeights(t *testing.T) {
	precomputed := jdSkillIn("python", "Python", 1.0, types.SectionRequired)
	precomputed.ComputedWeight = 1.5
	unset := jdSkillIn("docker", "Docker", 0.9, types.SectionGeneral)

	out := EnsureComputedWeights([]types.JDSkill{precomputed, unset})

	assert.Equal(t, 1.5, out[0].ComputedWeight)
	assert.Equal(t, 0.9, out[1].ComputedWeight)
}

func TestEnsureComputedWeights_DoesNotMutateInput(t *testing.T) {
	skills := []types.JDSkill{jdSkillIn("docker", "Docker", 0.9, types.SectionGeneral)}

	out := EnsureComputedWeights(skills)

	assert.Zero(t, skills[0].ComputedWeight)
	assert.Equal(t, 0.9, out[0].ComputedWeight)
}

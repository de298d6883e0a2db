package scoring

import (
	"math"

	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

// hardCategories and softCategories partition skills for the per-category
// breakdowns. Categories outside both partitions count toward the overall
// percentage only.
var hardCategories = map[string]bool{
	types.CategoryLanguage:    true,
	types.CategoryFramework:   true,
	types.CategoryTool:        true,
	types.CategoryCloud:       true,
	types.CategoryDatabase:    true,
	types.CategoryAPI:         true,
	types.CategoryAIML:        true,
	types.CategoryMethodology: true,
}

var softCategories = map[string]bool{
	types.CategorySoft: true,
}

// ComputeScores aggregates matched weight into percentage scores. The
// overall percentage saturates at 100 even when experience multipliers push
// raw matched weight above the JD total. A partition with no JD weight has
// no defined match rate and reports nil, which is distinct from 0%.
func ComputeScores(matched map[string]types.MatchedSkill, jdSkills []types.JDSkill) types.ScoreSummary {
	var total, hardTotal, softTotal float64
	for _, s := range jdSkills {
		total += s.ComputedWeight
		if hardCategories[s.Category] {
			hardTotal += s.ComputedWeight
		} else if softCategories[s.Category] {
			softTotal += s.ComputedWeight
		}
	}

	if total == 0 {
		return types.ScoreSummary{MatchPercentage: 0}
	}

	var raw, hardRaw, softRaw float64
	for _, m := range matched {
		raw += m.WeightedScore
		if hardCategories[m.Category] {
			hardRaw += m.WeightedScore
		} else if softCategories[m.Category] {
			softRaw += m.WeightedScore
		}
	}

	summary := types.ScoreSummary{
		MatchPercentage: percentage(raw, total),
	}
	if hardTotal > 0 {
		p := percentage(hardRaw, hardTotal)
		summary.HardSkillMatch = &p
	}
	if softTotal > 0 {
		p := percentage(softRaw, softTotal)
		summary.SoftSkillMatch = &p
	}
	return summary
}

// percentage is min(raw/total, 1) x 100 rounded to 1 decimal.
func percentage(raw, total float64) float64 {
	return round1(math.Min(raw/total, 1.0) * 100.0)
}

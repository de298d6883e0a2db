package scoring

import (
	"sort"

	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

// categoryMultiplier expresses how much closing a gap in each category
// matters relative to its computed weight. Unknown categories use
// defaultCategoryMultiplier.
var categoryMultiplier = map[string]float64{
	types.CategoryLanguage:    2.0,
	types.CategoryAIML:        1.8,
	types.CategoryFramework:   1.7,
	types.CategoryTool:        1.5,
	types.CategoryCloud:       1.5,
	types.CategoryDatabase:    1.4,
	types.CategoryAPI:         1.3,
	types.CategoryMethodology: 0.8,
	types.CategorySoft:        0.5,
}

const defaultCategoryMultiplier = 1.0

// RankMissing computes each missing skill's priority score (computed weight
// x category multiplier, rounded to 3 decimals) and returns the skills
// sorted by priority descending. Equal priorities order alphabetically by
// name so the ranking is stable across runs.
func RankMissing(missing map[string]types.MissingSkill) []types.MissingSkill {
	ranked := make([]types.MissingSkill, 0, len(missing))
	for _, skill := range missing {
		multiplier, ok := categoryMultiplier[skill.Category]
		if !ok {
			multiplier = defaultCategoryMultiplier
		}
		skill.PriorityScore = round3(skill.ComputedWeight * multiplier)
		ranked = append(ranked, skill)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].PriorityScore != ranked[j].PriorityScore {
			return ranked[i].PriorityScore > ranked[j].PriorityScore
		}
		return ranked[i].Name < ranked[j].Name
	})

	return ranked
}

package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

// maxReportNames caps how many skill names each report sentence lists.
const maxReportNames = 3

// GapReport renders a deterministic human-readable summary of the analysis.
// Rule-based template only: no randomness, no external calls.
func GapReport(summary types.ScoreSummary, matched map[string]types.MatchedSkill, rankedMissing []types.MissingSkill, extra map[string]types.ExtraSkill) string {
	pct := summary.MatchPercentage
	parts := []string{fmt.Sprintf("Overall skill match: %.1f%%.", pct)}

	total := len(matched) + len(rankedMissing)
	if total > 0 {
		parts = append(parts, fmt.Sprintf("Matched %d of %d required skills.", len(matched), total))
	}

	if len(rankedMissing) > 0 {
		names := make([]string, 0, maxReportNames)
		for _, s := range rankedMissing {
			names = append(names, s.Name)
			if len(names) == maxReportNames {
				break
			}
		}
		parts = append(parts, fmt.Sprintf("Top skills to develop: %s.", strings.Join(names, ", ")))
	}

	if len(extra) > 0 {
		names := make([]string, 0, len(extra))
		for _, s := range extra {
			names = append(names, s.Name)
		}
		sort.Strings(names)
		if len(names) > maxReportNames {
			names = names[:maxReportNames]
		}
		parts = append(parts, fmt.Sprintf("You bring additional skills beyond the JD: %s.", strings.Join(names, ", ")))
	}

	switch {
	case pct >= 80:
		parts = append(parts, "Strong alignment - you are a competitive candidate for this role.")
	case pct >= 60:
		parts = append(parts, "Good alignment - closing a few skill gaps will strengthen your application.")
	case pct >= 40:
		parts = append(parts, "Moderate alignment - significant preparation recommended before applying.")
	default:
		parts = append(parts, "Low alignment - substantial skill building is needed for this role.")
	}

	return strings.Join(parts, " ")
}

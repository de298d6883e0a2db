// Package match compares canonicalized resume skills against canonicalized
// JD skills. Both sides have already been resolved to canonical IDs, so
// matching is a pure in-memory set intersection with no ontology access.
package match

import (
	"math"

	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

// ExperienceMultiplier scales a match by the candidate's years with the
// skill. Five or more years exceeds most JD expectations; a skill listed
// with no stated experience is discounted hardest.
func ExperienceMultiplier(years float64) float64 {
	switch {
	case years >= 5:
		return 1.2
	case years >= 3:
		return 1.1
	case years >= 1:
		return 1.0
	case years > 0:
		return 0.85
	default:
		return 0.70
	}
}

// Match intersects the two canonical skill lists. JD skills found in the
// resume become matched entries with a weighted score; JD skills absent
// from the resume become missing entries; resume skills the JD never asked
// for become extra entries. All collections are keyed by canonical ID.
//
// JD skills are expected to carry ComputedWeight (see scoring.ComputeJDWeights).
func Match(resumeSkills []types.ResumeSkill, jdSkills []types.JDSkill) types.MatchResult {
	resumeByID := make(map[string]types.ResumeSkill, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeByID[s.ID] = s
	}

	result := types.MatchResult{
		Matched: make(map[string]types.MatchedSkill),
		Missing: make(map[string]types.MissingSkill),
		Extra:   make(map[string]types.ExtraSkill),
	}

	jdIDs := make(map[string]bool, len(jdSkills))
	for _, jdSkill := range jdSkills {
		jdIDs[jdSkill.ID] = true

		resumeSkill, found := resumeByID[jdSkill.ID]
		if !found {
			result.Missing[jdSkill.ID] = types.MissingSkill{
				Name:           jdSkill.CanonicalName,
				SkillID:        jdSkill.ID,
				Category:       jdSkill.Category,
				Domain:         jdSkill.Domain,
				ComputedWeight: jdSkill.ComputedWeight,
				BaseWeight:     jdSkill.BaseWeight,
				Confidence:     jdSkill.Confidence,
				Section:        jdSkill.Section,
			}
			continue
		}

		// A fuzzy resolution on either side degrades the whole match.
		confidence := math.Min(resumeSkill.Confidence, jdSkill.Confidence)
		matchType := types.MatchFuzzy
		if resumeSkill.MatchType == types.MatchExact && jdSkill.MatchType == types.MatchExact {
			matchType = types.MatchExact
		}

		multiplier := ExperienceMultiplier(resumeSkill.Years)
		result.Matched[jdSkill.ID] = types.MatchedSkill{
			Name:          jdSkill.CanonicalName,
			SkillID:       jdSkill.ID,
			Category:      jdSkill.Category,
			MatchType:     matchType,
			Confidence:    round3(confidence),
			Years:         resumeSkill.Years,
			WeightedScore: round4(jdSkill.ComputedWeight * confidence * multiplier),
		}
	}

	for _, s := range resumeSkills {
		if !jdIDs[s.ID] {
			result.Extra[s.ID] = types.ExtraSkill{
				Name:     s.CanonicalName,
				SkillID:  s.ID,
				Category: s.Category,
			}
		}
	}

	return result
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

// Package scoring computes JD skill importance weights, aggregate match
// percentages, missing-skill priority ranking and the deterministic gap
// report. Pure arithmetic, no I/O.
package scoring

import (
	"math"
	"strings"

	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

const (
	// Mentions beyond the third add no further boost.
	frequencyCap = 3
	// Each extra mention adds 10%: 1.0x for one mention up to 1.2x for three.
	frequencyStep = 0.1
)

// sectionBoost scales a skill's weight by the requirement tier it appeared
// under. Required skills count half again; preferred skills are discounted.
var sectionBoost = map[types.Section]float64{
	types.SectionRequired:  1.5,
	types.SectionPreferred: 0.8,
	types.SectionGeneral:   1.0,
}

// ComputeJDWeights annotates each JD skill with its computed weight:
// base_weight x frequency boost x section boost, rounded to 4 decimals.
// Frequency is the number of occurrences of the lowercased canonical name
// in the normalized JD text, capped at 3. Returns a new slice; the input
// is not modified.
func ComputeJDWeights(jdSkills []types.JDSkill, normalizedJD string) []types.JDSkill {
	out := make([]types.JDSkill, len(jdSkills))
	for i, skill := range jdSkills {
		freq := strings.Count(normalizedJD, strings.ToLower(skill.CanonicalName))
		if freq > frequencyCap {
			freq = frequencyCap
		}
		freqBoost := 1.0 + math.Max(float64(freq-1), 0)*frequencyStep

		boost, ok := sectionBoost[skill.Section]
		if !ok {
			boost = 1.0
		}

		skill.ComputedWeight = round4(skill.BaseWeight * freqBoost * boost)
		out[i] = skill
	}
	return out
}

// EnsureComputedWeights fills the base weight into any skill whose computed
// weight was never set, so matching and scoring always see a usable weight.
// Returns a new slice; the input is not modified.
func EnsureComputedWeights(jdSkills []types.JDSkill) []types.JDSkill {
	out := make([]types.JDSkill, len(jdSkills))
	for i, skill := range jdSkills {
		if skill.ComputedWeight == 0 {
			skill.ComputedWeight = skill.BaseWeight
		}
		out[i] = skill
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

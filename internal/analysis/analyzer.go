// Package analysis bundles the extractors and engines over a single
// ontology snapshot and exposes the request-shaped operations the caller
// layer consumes. Every operation is a bounded, synchronous, pure
// computation; the analyzer holds no cross-request state.
package analysis

import (
	"sort"
	"time"

	"github.com/thapanirajan/ResumeEZ-backend/internal/jd"
	"github.com/thapanirajan/ResumeEZ-backend/internal/match"
	"github.com/thapanirajan/ResumeEZ-backend/internal/ontology"
	"github.com/thapanirajan/ResumeEZ-backend/internal/resume"
	"github.com/thapanirajan/ResumeEZ-backend/internal/roadmap"
	"github.com/thapanirajan/ResumeEZ-backend/internal/scoring"
	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

// Analyzer runs the skill-gap pipeline against one ontology snapshot.
// Construct one per snapshot (cheap) and invoke it from any number of
// goroutines.
type Analyzer struct {
	cache   *ontology.Cache
	jd      *jd.Extractor
	resume  *resume.Extractor
	roadmap *roadmap.Generator
}

// NewAnalyzer builds an analyzer over a snapshot at the default fuzzy
// threshold.
func NewAnalyzer(cache *ontology.Cache) *Analyzer {
	return NewAnalyzerWithThreshold(cache, ontology.DefaultFuzzyThreshold)
}

// NewAnalyzerWithThreshold builds an analyzer whose extractors resolve
// fuzzy terms at the given threshold. A threshold of 0 or below falls back
// to the default.
func NewAnalyzerWithThreshold(cache *ontology.Cache, fuzzyThreshold int) *Analyzer {
	return &Analyzer{
		cache:   cache,
		jd:      jd.NewExtractorWithThreshold(cache, fuzzyThreshold),
		resume:  resume.NewExtractorWithThreshold(cache, fuzzyThreshold),
		roadmap: roadmap.NewGenerator(cache),
	}
}

// ExtractJDSkills resolves raw JD text into canonical skills with sections.
func (a *Analyzer) ExtractJDSkills(rawText string) types.JDExtraction {
	return a.jd.Extract(rawText)
}

// ExtractResumeSkills resolves a resume document into canonical skills with
// years of experience.
func (a *Analyzer) ExtractResumeSkills(resumeData map[string]any) []types.ResumeSkill {
	return a.resume.Extract(resumeData)
}

// MatchSkills intersects the two canonical lists. JD skills must already
// carry computed weights.
func (a *Analyzer) MatchSkills(resumeSkills []types.ResumeSkill, jdSkills []types.JDSkill) types.MatchResult {
	return match.Match(resumeSkills, jdSkills)
}

// BuildRoadmap expands ranked missing skills into a three-phase plan.
func (a *Analyzer) BuildRoadmap(missing []types.MissingSkill, knownSkillIDs map[string]bool) types.Roadmap {
	return a.roadmap.Build(missing, knownSkillIDs)
}

// Analyze runs the full pipeline on one JD/resume pair: extract both sides,
// weight the JD skills, match, score, rank the gaps, render the report and
// build the roadmap.
func (a *Analyzer) Analyze(jdText string, resumeData map[string]any) *types.Analysis {
	extraction := a.ExtractJDSkills(jdText)
	resumeSkills := a.ExtractResumeSkills(resumeData)

	jdSkills := scoring.ComputeJDWeights(extraction.Skills, extraction.Normalized)
	result := match.Match(resumeSkills, jdSkills)
	summary := scoring.ComputeScores(result.Matched, jdSkills)
	ranked := scoring.RankMissing(result.Missing)
	report := scoring.GapReport(summary, result.Matched, ranked, result.Extra)

	known := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		known[s.ID] = true
	}

	return &types.Analysis{
		JDHash:          extraction.JDHash,
		MatchPercentage: summary.MatchPercentage,
		HardSkillMatch:  summary.HardSkillMatch,
		SoftSkillMatch:  summary.SoftSkillMatch,
		Matched:         sortedMatched(result.Matched),
		Missing:         ranked,
		Extra:           sortedExtra(result.Extra),
		GapReport:       report,
		Roadmap:         a.roadmap.Build(ranked, known),
		CreatedAt:       time.Now().UTC(),
	}
}

// sortedMatched orders matched skills by weighted score descending, name
// ascending, for a stable serialized form.
func sortedMatched(matched map[string]types.MatchedSkill) []types.MatchedSkill {
	out := make([]types.MatchedSkill, 0, len(matched))
	for _, m := range matched {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WeightedScore != out[j].WeightedScore {
			return out[i].WeightedScore > out[j].WeightedScore
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortedExtra(extra map[string]types.ExtraSkill) []types.ExtraSkill {
	out := make([]types.ExtraSkill, 0, len(extra))
	for _, e := range extra {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

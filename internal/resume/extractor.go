// Package resume extracts canonical skills from loosely structured resume
// documents. The input shape is user-authored and unconstrained, so every
// known pattern is tried independently and the results are merged.
package resume

import (
	"strings"

	"github.com/thapanirajan/ResumeEZ-backend/internal/ontology"
	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

// rawEntry is one (surface name, years) pair gathered before resolution.
type rawEntry struct {
	name  string
	years float64
}

// Top-level list fields that hold skills directly. Keys are compared with
// case and underscores stripped, so "technicalSkills", "technical_skills"
// and "TechnicalSkills" all match.
var skillListFields = map[string]bool{
	"skills":          true,
	"technicalskills": true,
	"softskills":      true,
	"tools":           true,
	"technologies":    true,
}

// Top-level array fields holding job entries with nested skill lists.
var experienceFields = map[string]bool{
	"experience":     true,
	"workexperience": true,
	"employment":     true,
	"jobs":           true,
	"positions":      true,
}

// Keys inside a job entry that may carry skill lists.
var experienceSkillKeys = map[string]bool{
	"skills":       true,
	"technologies": true,
	"tools":        true,
	"techstack":    true,
	"languages":    true,
}

// Object keys that may carry a skill's display name.
var nameKeys = []string{"name", "skill", "title", "label"}

// Object keys that may carry an experience duration.
var yearsKeys = []string{"years", "experience", "yearsOfExperience"}

// Substrings that mark a generic section as skill-related.
var skillSectionKeywords = []string{
	"skill", "tech", "tool", "language", "framework",
	"competenc", "proficien", "expertise",
}

// Keys inside a section entry that may carry its content list.
var sectionContentKeys = []string{"items", "content", "data", "list", "skills"}

// Free-text fields scanned for exact whole-word synonym occurrences.
var freeTextFields = []string{"summary", "about", "objective", "profile", "bio"}

// Extractor resolves resume documents against one ontology snapshot.
type Extractor struct {
	cache     *ontology.Cache
	threshold int
}

// NewExtractor builds an extractor over a snapshot at the default fuzzy
// threshold.
func NewExtractor(cache *ontology.Cache) *Extractor {
	return NewExtractorWithThreshold(cache, ontology.DefaultFuzzyThreshold)
}

// NewExtractorWithThreshold builds an extractor over a snapshot. A
// threshold of 0 or below falls back to the default.
func NewExtractorWithThreshold(cache *ontology.Cache, threshold int) *Extractor {
	if threshold <= 0 {
		threshold = ontology.DefaultFuzzyThreshold
	}
	return &Extractor{cache: cache, threshold: threshold}
}

// Extract gathers raw skill mentions from every recognized document shape,
// resolves them against the ontology and merges duplicates by canonical ID,
// keeping the maximum years seen. Malformed fragments are skipped silently;
// Extract never fails.
func (e *Extractor) Extract(doc map[string]any) []types.ResumeSkill {
	if len(doc) == 0 {
		return []types.ResumeSkill{}
	}
	return e.resolveAndMerge(e.gather(doc))
}

func (e *Extractor) gather(doc map[string]any) []rawEntry {
	var raw []rawEntry

	// Keys are walked in sorted order: map iteration is randomized and the
	// first occurrence of a skill decides its reported match type.
	for _, key := range sortedKeys(doc) {
		value := doc[key]
		folded := foldKey(key)
		switch {
		case skillListFields[folded]:
			raw = append(raw, fromSkillList(asList(value))...)
		case experienceFields[folded]:
			raw = append(raw, fromExperience(asList(value))...)
		case folded == "sections":
			raw = append(raw, fromSections(asList(value))...)
		}
	}

	for _, field := range freeTextFields {
		if text, ok := doc[field].(string); ok {
			raw = append(raw, e.fromFreeText(text)...)
		}
	}

	return raw
}

// fromSkillList accepts both plain strings and objects with a name-like key
// plus an optional years-like key.
func fromSkillList(items []any) []rawEntry {
	var raw []rawEntry
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if name := strings.TrimSpace(v); name != "" {
				raw = append(raw, rawEntry{name: name})
			}
		case map[string]any:
			name := firstString(v, nameKeys)
			if name == "" {
				continue
			}
			raw = append(raw, rawEntry{name: name, years: firstYears(v, yearsKeys)})
		}
	}
	return raw
}

func fromExperience(jobs []any) []rawEntry {
	var raw []rawEntry
	for _, item := range jobs {
		job, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for _, key := range sortedKeys(job) {
			if experienceSkillKeys[foldKey(key)] {
				raw = append(raw, fromSkillList(asList(job[key]))...)
			}
		}
	}
	return raw
}

// fromSections parses generic section arrays whose title mentions skills,
// technology, tooling or competency.
func fromSections(sections []any) []rawEntry {
	var raw []rawEntry
	for _, item := range sections {
		section, ok := item.(map[string]any)
		if !ok {
			continue
		}
		title := strings.ToLower(firstString(section, []string{"title", "name"}))
		if !containsAny(title, skillSectionKeywords) {
			continue
		}
		for _, key := range sectionContentKeys {
			raw = append(raw, fromSkillList(asList(section[key]))...)
		}
	}
	return raw
}

// fromFreeText scans prose fields for exact whole-word occurrences of known
// synonyms. Fuzzy matching is deliberately skipped here: natural language
// produces too many near-misses.
func (e *Extractor) fromFreeText(text string) []rawEntry {
	if text == "" {
		return nil
	}
	padded := " " + strings.ToLower(text) + " "

	var raw []rawEntry
	for _, syn := range e.cache.Synonyms() {
		if strings.Contains(padded, " "+syn+" ") {
			raw = append(raw, rawEntry{name: syn})
		}
	}
	return raw
}

// resolveAndMerge resolves each raw entry (exact then fuzzy) and merges by
// canonical ID, keeping the maximum years and the first resolution's match
// type and confidence.
func (e *Extractor) resolveAndMerge(raw []rawEntry) []types.ResumeSkill {
	merged := make(map[string]int) // canonical ID -> index in out
	out := []types.ResumeSkill{}

	for _, entry := range raw {
		skill, confidence, matchType, ok := e.resolve(entry.name)
		if !ok {
			continue
		}

		if idx, seen := merged[skill.ID]; seen {
			if entry.years > out[idx].Years {
				out[idx].Years = entry.years
			}
			continue
		}

		merged[skill.ID] = len(out)
		out = append(out, types.ResumeSkill{
			Skill:      skill,
			MatchType:  matchType,
			Confidence: confidence,
			Years:      entry.years,
		})
	}

	return out
}

func (e *Extractor) resolve(term string) (types.Skill, float64, types.MatchType, bool) {
	if skill, ok := e.cache.Lookup(term); ok {
		return skill, 1.0, types.MatchExact, true
	}
	if skill, confidence, ok := e.cache.FuzzyLookup(term, e.threshold); ok {
		return skill, confidence, types.MatchFuzzy, true
	}
	return types.Skill{}, 0, "", false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

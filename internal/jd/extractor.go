// Package jd converts raw job-description text into deduplicated canonical
// skills tagged with a requirement section and a match confidence.
package jd

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/thapanirajan/ResumeEZ-backend/internal/ontology"
	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

// phrase is a multi-word synonym pre-tokenized for the left-to-right
// matching pass.
type phrase struct {
	tokens []string
}

// Extractor resolves JD text against one ontology snapshot. It is stateless
// after construction; build one per snapshot and share it across requests.
type Extractor struct {
	cache     *ontology.Cache
	threshold int
	phrases   []phrase
	// phrasesByFirst indexes phrases by their first token for the scan.
	phrasesByFirst map[string][]int
}

// NewExtractor builds an extractor over a snapshot at the default fuzzy
// threshold.
func NewExtractor(cache *ontology.Cache) *Extractor {
	return NewExtractorWithThreshold(cache, ontology.DefaultFuzzyThreshold)
}

// NewExtractorWithThreshold builds an extractor over a snapshot,
// pre-tokenizing every multi-word synonym for the phrase-matching pass.
// A threshold of 0 or below falls back to the default.
func NewExtractorWithThreshold(cache *ontology.Cache, threshold int) *Extractor {
	if threshold <= 0 {
		threshold = ontology.DefaultFuzzyThreshold
	}
	e := &Extractor{
		cache:          cache,
		threshold:      threshold,
		phrasesByFirst: make(map[string][]int),
	}
	for _, syn := range cache.Synonyms() {
		toks := tokenize(syn)
		if len(toks) < 2 {
			continue
		}
		e.phrases = append(e.phrases, phrase{tokens: toks})
		e.phrasesByFirst[toks[0]] = append(e.phrasesByFirst[toks[0]], len(e.phrases)-1)
	}
	return e
}

// Extract runs the full pipeline on raw JD text. It never fails: empty or
// unresolvable input yields an empty skill list and the hash of the empty
// normalized string.
func (e *Extractor) Extract(raw string) types.JDExtraction {
	normalized := Normalize(raw)

	sum := sha256.Sum256([]byte(normalized))
	out := types.JDExtraction{
		JDHash:     hex.EncodeToString(sum[:]),
		Skills:     []types.JDSkill{},
		Normalized: normalized,
	}
	if normalized == "" {
		return out
	}

	lines := buildSectionMap(normalized)
	tokens := tokenize(normalized)

	candidates, covered := e.matchPhrases(tokens)
	candidates = append(candidates, e.singleTokenCandidates(tokens, covered, nounTokens(normalized))...)

	seen := make(map[string]bool)
	for _, term := range candidates {
		skill, confidence, matchType, ok := e.resolve(term)
		if !ok || seen[skill.ID] {
			continue
		}
		seen[skill.ID] = true

		out.Skills = append(out.Skills, types.JDSkill{
			Skill:      skill,
			MatchType:  matchType,
			Confidence: confidence,
			Section:    detectSection(strings.ToLower(skill.CanonicalName), lines),
		})
	}

	return out
}

// span is a candidate phrase match over token positions [start, end).
type span struct {
	start, end int
}

// matchPhrases finds every multi-word synonym occurrence in one
// left-to-right pass. Overlaps keep the earliest start; same-start ties
// keep the longer span. Returns the surviving surface strings and the set
// of token positions they cover.
func (e *Extractor) matchPhrases(tokens []string) ([]string, map[int]bool) {
	var spans []span
	for i, tok := range tokens {
		for _, pi := range e.phrasesByFirst[tok] {
			p := e.phrases[pi]
			if i+len(p.tokens) > len(tokens) {
				continue
			}
			matched := true
			for j := 1; j < len(p.tokens); j++ {
				if tokens[i+j] != p.tokens[j] {
					matched = false
					break
				}
			}
			if matched {
				spans = append(spans, span{start: i, end: i + len(p.tokens)})
			}
		}
	}

	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end-spans[i].start > spans[j].end-spans[j].start
	})

	covered := make(map[int]bool)
	var surfaces []string
	for _, sp := range spans {
		overlaps := false
		for i := sp.start; i < sp.end; i++ {
			if covered[i] {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		for i := sp.start; i < sp.end; i++ {
			covered[i] = true
		}
		surfaces = append(surfaces, strings.Join(tokens[sp.start:sp.end], " "))
	}

	return surfaces, covered
}

// singleTokenCandidates walks tokens not covered by phrase matches and
// keeps those that look like skill mentions: a direct or base-form synonym
// hit, or a noun per the tagger. Kept tokens are still filtered at
// resolution time, so the noun heuristic only boosts recall.
func (e *Extractor) singleTokenCandidates(tokens []string, covered map[int]bool, nouns map[string]bool) []string {
	var candidates []string
	for i, tok := range tokens {
		if covered[i] || stopWords[tok] || len([]rune(tok)) <= 2 {
			continue
		}
		if _, ok := e.cache.Lookup(tok); ok {
			candidates = append(candidates, tok)
			continue
		}
		if _, ok := e.cache.Lookup(baseForm(tok)); ok {
			candidates = append(candidates, tok)
			continue
		}
		if nouns[tok] {
			candidates = append(candidates, tok)
		}
	}
	return candidates
}

// resolve tries exact lookup first, then fuzzy at the extractor threshold.
func (e *Extractor) resolve(term string) (types.Skill, float64, types.MatchType, bool) {
	if skill, ok := e.cache.Lookup(term); ok {
		return skill, 1.0, types.MatchExact, true
	}
	if skill, confidence, ok := e.cache.FuzzyLookup(term, e.threshold); ok {
		return skill, confidence, types.MatchFuzzy, true
	}
	return types.Skill{}, 0, "", false
}

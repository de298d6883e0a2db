// Package ontology provides the in-memory skill catalog: an immutable
// snapshot built once from a Source and queried lock-free by every other
// component. Raw text terms enter the system only through this package.
package ontology

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

// DefaultFuzzyThreshold is the minimum token-set similarity (0-100) for a
// fuzzy lookup to count as a match. 82 rejects "pytorch" vs "python" (~60)
// while accepting "postgres" vs "postgresql" (~85).
const DefaultFuzzyThreshold = 82

// Cache is an immutable snapshot of the skill ontology. Build it with
// NewCache; after construction it is never mutated and is safe for
// concurrent reads without locking.
type Cache struct {
	synonymMap  map[string]types.Skill
	synonymList []string // insertion order, for deterministic fuzzy ties
	skillsByID  map[string]types.Skill
	prereqs     map[string][]string
	subtopics   map[string][]string
}

// NewCache builds a complete snapshot from a catalog. Synonym registration
// order is catalog order with canonical names first, so fuzzy tie-breaking
// is stable across rebuilds of the same catalog.
func NewCache(cat *Catalog) *Cache {
	c := &Cache{
		synonymMap: make(map[string]types.Skill),
		skillsByID: make(map[string]types.Skill),
		prereqs:    make(map[string][]string),
		subtopics:  make(map[string][]string),
	}
	if cat == nil {
		return c
	}

	for _, s := range cat.Skills {
		c.skillsByID[s.ID] = s
		c.register(s.CanonicalName, s)
	}

	for _, row := range cat.Synonyms {
		s, ok := c.skillsByID[row.SkillID]
		if !ok {
			continue // synonym of an inactive or unknown skill
		}
		c.register(row.Synonym, s)
	}

	for _, row := range cat.Prerequisites {
		c.prereqs[row.SkillID] = append(c.prereqs[row.SkillID], row.PrerequisiteID)
	}

	subs := make([]SubtopicRow, len(cat.Subtopics))
	copy(subs, cat.Subtopics)
	sort.SliceStable(subs, func(i, j int) bool { return subs[i].OrderIndex < subs[j].OrderIndex })
	for _, row := range subs {
		c.subtopics[row.SkillID] = append(c.subtopics[row.SkillID], row.Subtopic)
	}

	return c
}

// register case-folds a surface string into the synonym map. The first
// registration of a string wins; later duplicates are ignored so the
// synonym list holds each string exactly once.
func (c *Cache) register(surface string, s types.Skill) {
	key := strings.ToLower(strings.TrimSpace(surface))
	if key == "" {
		return
	}
	if _, exists := c.synonymMap[key]; exists {
		return
	}
	c.synonymMap[key] = s
	c.synonymList = append(c.synonymList, key)
}

// Lookup resolves a term by exact match, case-insensitive and with
// surrounding whitespace trimmed. O(1).
func (c *Cache) Lookup(term string) (types.Skill, bool) {
	s, ok := c.synonymMap[strings.ToLower(strings.TrimSpace(term))]
	return s, ok
}

// FuzzyLookup resolves a term by token-set similarity against every known
// synonym. It returns the best match when its score reaches threshold,
// with confidence score/100. Ties keep the first-registered synonym.
func (c *Cache) FuzzyLookup(term string, threshold int) (types.Skill, float64, bool) {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" || len(c.synonymList) == 0 {
		return types.Skill{}, 0, false
	}

	best := -1
	bestSyn := ""
	for _, syn := range c.synonymList {
		if score := fuzzy.TokenSetRatio(needle, syn); score > best {
			best = score
			bestSyn = syn
		}
	}
	if best < threshold {
		return types.Skill{}, 0, false
	}
	return c.synonymMap[bestSyn], float64(best) / 100.0, true
}

// Skill returns the canonical record for an ID.
func (c *Cache) Skill(id string) (types.Skill, bool) {
	s, ok := c.skillsByID[id]
	return s, ok
}

// Prerequisites returns the prerequisite skills of id, empty when none.
func (c *Cache) Prerequisites(id string) []types.Skill {
	ids := c.prereqs[id]
	if len(ids) == 0 {
		return nil
	}
	out := make([]types.Skill, 0, len(ids))
	for _, pid := range ids {
		if s, ok := c.skillsByID[pid]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Subtopics returns the ordered subtopic list for id, empty when none.
func (c *Cache) Subtopics(id string) []string {
	return c.subtopics[id]
}

// Synonyms returns all synonym strings in registration order.
func (c *Cache) Synonyms() []string {
	out := make([]string, len(c.synonymList))
	copy(out, c.synonymList)
	return out
}

// SkillCount reports how many canonical skills the snapshot holds.
func (c *Cache) SkillCount() int {
	return len(c.skillsByID)
}

// Package roadmap turns a ranked missing-skill list into a phased,
// prerequisite-ordered learning plan.
package roadmap

import (
	"sort"

	"github.com/thapanirajan/ResumeEZ-backend/internal/ontology"
	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

// phase2Threshold splits directly-missing skills between the primary and
// advanced phases by priority score.
const phase2Threshold = 1.5

// node is one skill in the roadmap working set.
type node struct {
	skill          types.Skill
	isPrerequisite bool
	priorityScore  float64
}

// Generator builds roadmaps over one ontology snapshot.
type Generator struct {
	cache *ontology.Cache
}

// NewGenerator returns a generator over a snapshot.
func NewGenerator(cache *ontology.Cache) *Generator {
	return &Generator{cache: cache}
}

// Build expands the missing skills with their unmet prerequisites, orders
// the whole set topologically and assigns each skill to a phase:
// prerequisites to Core, high-priority missing skills to Primary, the rest
// to Advanced. Skills the candidate already knows (knownIDs) are never
// added as prerequisite steps. Empty input yields three empty phases.
func (g *Generator) Build(missing []types.MissingSkill, knownIDs map[string]bool) types.Roadmap {
	rm := types.Roadmap{
		Phase1Core:     []types.RoadmapSkill{},
		Phase2Primary:  []types.RoadmapSkill{},
		Phase3Advanced: []types.RoadmapSkill{},
	}
	if len(missing) == 0 {
		return rm
	}

	nodes := g.expand(missing, knownIDs)
	ordered := g.sortTopologically(nodes)

	for _, id := range ordered {
		n := nodes[id]
		skill := types.RoadmapSkill{
			Name:           n.skill.CanonicalName,
			SkillID:        n.skill.ID,
			Category:       n.skill.Category,
			Domain:         n.skill.Domain,
			IsPrerequisite: n.isPrerequisite,
			PriorityScore:  n.priorityScore,
			Subtopics:      subtopicsOrEmpty(g.cache, n.skill.ID),
		}

		switch {
		case n.isPrerequisite:
			rm.Phase1Core = append(rm.Phase1Core, skill)
		case n.priorityScore >= phase2Threshold:
			rm.Phase2Primary = append(rm.Phase2Primary, skill)
		default:
			rm.Phase3Advanced = append(rm.Phase3Advanced, skill)
		}
	}

	return rm
}

// expand seeds the working set with the missing skills and BFS-walks the
// prerequisite graph. A prerequisite already known by the candidate or
// already in the set is skipped, which also terminates the walk on cyclic
// graphs: the set only grows and the ontology is finite.
func (g *Generator) expand(missing []types.MissingSkill, knownIDs map[string]bool) map[string]node {
	nodes := make(map[string]node, len(missing))
	var queue []string

	for _, m := range missing {
		skill, ok := g.cache.Skill(m.SkillID)
		if !ok {
			// Missing entries may come from an older snapshot.
			skill = types.Skill{
				ID:            m.SkillID,
				CanonicalName: m.Name,
				Category:      m.Category,
				Domain:        m.Domain,
				BaseWeight:    m.BaseWeight,
			}
		}
		if _, seen := nodes[m.SkillID]; seen {
			continue
		}
		nodes[m.SkillID] = node{skill: skill, priorityScore: m.PriorityScore}
		queue = append(queue, m.SkillID)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, prereq := range g.cache.Prerequisites(current) {
			if knownIDs[prereq.ID] {
				continue
			}
			if _, seen := nodes[prereq.ID]; seen {
				continue
			}
			nodes[prereq.ID] = node{skill: prereq, isPrerequisite: true}
			queue = append(queue, prereq.ID)
		}
	}

	return nodes
}

// sortTopologically runs Kahn's algorithm over the subgraph induced by the
// working set. Ready nodes are always taken alphabetically by canonical
// name, so the total order is deterministic regardless of input order.
// Nodes on a prerequisite cycle never reach in-degree zero; they are
// appended after the main pass, alphabetically, rather than dropped.
func (g *Generator) sortTopologically(nodes map[string]node) []string {
	inDegree := make(map[string]int, len(nodes))
	dependents := make(map[string][]string, len(nodes))

	for id := range nodes {
		inDegree[id] = 0
	}
	for id := range nodes {
		for _, prereq := range g.cache.Prerequisites(id) {
			if _, inSet := nodes[prereq.ID]; inSet {
				dependents[prereq.ID] = append(dependents[prereq.ID], id)
				inDegree[id]++
			}
		}
	}

	byName := func(ids []string) {
		sort.Slice(ids, func(i, j int) bool {
			return nodes[ids[i]].skill.CanonicalName < nodes[ids[j]].skill.CanonicalName
		})
	}

	var ready []string
	for id, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, id)
		}
	}
	byName(ready)

	ordered := make([]string, 0, len(nodes))
	placed := make(map[string]bool, len(nodes))
	for len(ready) > 0 {
		current := ready[0]
		ready = ready[1:]
		ordered = append(ordered, current)
		placed[current] = true

		deps := append([]string(nil), dependents[current]...)
		byName(deps)
		for _, dep := range deps {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				ready = append(ready, dep)
			}
		}
		byName(ready)
	}

	if len(ordered) < len(nodes) {
		var leftover []string
		for id := range nodes {
			if !placed[id] {
				leftover = append(leftover, id)
			}
		}
		byName(leftover)
		ordered = append(ordered, leftover...)
	}

	return ordered
}

func subtopicsOrEmpty(cache *ontology.Cache, id string) []string {
	if subs := cache.Subtopics(id); subs != nil {
		return subs
	}
	return []string{}
}

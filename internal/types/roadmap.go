package types

// RoadmapSkill is one learning step in a phased roadmap, enriched with the
// ontology's subtopics for that skill.
type RoadmapSkill struct {
	Name           string   `json:"name"`
	SkillID        string   `json:"canonical_id"`
	Category       string   `json:"category"`
	Domain         string   `json:"domain,omitempty"`
	IsPrerequisite bool     `json:"is_prerequisite"`
	PriorityScore  float64  `json:"priority_score"`
	Subtopics      []string `json:"subtopics"`
}

// Roadmap is a three-phase learning plan. Within each phase skills appear in
// prerequisite-respecting topological order.
type Roadmap struct {
	Phase1Core     []RoadmapSkill `json:"phase_1_core"`
	Phase2Primary  []RoadmapSkill `json:"phase_2_primary"`
	Phase3Advanced []RoadmapSkill `json:"phase_3_advanced"`
}

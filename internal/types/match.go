package types

// MatchedSkill is a JD skill found in the resume, with its weighted score.
type MatchedSkill struct {
	Name          string    `json:"name"`
	SkillID       string    `json:"canonical_id"`
	Category      string    `json:"category"`
	MatchType     MatchType `json:"match_type"`
	Confidence    float64   `json:"confidence"`
	Years         float64   `json:"years"`
	WeightedScore float64   `json:"weighted_score"`
}

// MissingSkill is a JD skill absent from the resume.
// PriorityScore is zero until scoring.RankMissing has run.
type MissingSkill struct {
	Name           string  `json:"name"`
	SkillID        string  `json:"canonical_id"`
	Category       string  `json:"category"`
	Domain         string  `json:"domain,omitempty"`
	ComputedWeight float64 `json:"computed_weight"`
	BaseWeight     float64 `json:"base_weight"`
	Confidence     float64 `json:"confidence"`
	Section        Section `json:"section"`
	PriorityScore  float64 `json:"priority_score,omitempty"`
}

// ExtraSkill is a resume skill the JD never asked for.
type ExtraSkill struct {
	Name     string `json:"name"`
	SkillID  string `json:"canonical_id"`
	Category string `json:"category"`
}

// MatchResult is the outcome of comparing resume skills against JD skills.
// All three collections are keyed by canonical skill ID, which guarantees
// uniqueness per skill.
type MatchResult struct {
	Matched map[string]MatchedSkill `json:"matched"`
	Missing map[string]MissingSkill `json:"missing"`
	Extra   map[string]ExtraSkill   `json:"extra"`
}

// ScoreSummary holds aggregate match percentages. Hard/soft partitions are
// nil when the JD carries no weight in that partition, which is distinct
// from a true 0% match.
type ScoreSummary struct {
	MatchPercentage float64  `json:"match_percentage"`
	HardSkillMatch  *float64 `json:"hard_skill_match"`
	SoftSkillMatch  *float64 `json:"soft_skill_match"`
}

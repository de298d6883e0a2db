package types

import "time"

// Analysis is the full result of comparing one resume against one JD:
// the match breakdown, aggregate scores, ranked gaps, a deterministic
// textual summary, and the learning roadmap.
type Analysis struct {
	ID              string         `json:"id,omitempty"`
	JDHash          string         `json:"jd_hash"`
	MatchPercentage float64        `json:"match_percentage"`
	HardSkillMatch  *float64       `json:"hard_skill_match"`
	SoftSkillMatch  *float64       `json:"soft_skill_match"`
	Matched         []MatchedSkill `json:"matched_skills"`
	Missing         []MissingSkill `json:"missing_skills"`
	Extra           []ExtraSkill   `json:"extra_skills"`
	GapReport       string         `json:"gap_report"`
	Roadmap         Roadmap        `json:"roadmap"`
	CreatedAt       time.Time      `json:"created_at,omitempty"`
}

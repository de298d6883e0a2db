package types

// JDSkill is a canonical skill resolved from job-description text.
// ComputedWeight is zero until scoring.ComputeJDWeights has run.
type JDSkill struct {
	Skill
	MatchType      MatchType `json:"match_type"`
	Confidence     float64   `json:"confidence"`
	Section        Section   `json:"section"`
	ComputedWeight float64   `json:"computed_weight,omitempty"`
}

// JDExtraction is the output of the JD skill extractor.
// Normalized is kept for downstream frequency counting and is not serialized.
type JDExtraction struct {
	JDHash     string    `json:"jd_hash"`
	Skills     []JDSkill `json:"canonical_skills"`
	Normalized string    `json:"-"`
}

// ResumeSkill is a canonical skill resolved from a resume document.
// Years is 0 when the resume did not state an experience duration.
type ResumeSkill struct {
	Skill
	MatchType  MatchType `json:"match_type"`
	Confidence float64   `json:"confidence"`
	Years      float64   `json:"years"`
}

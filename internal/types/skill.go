// Package types provides type definitions for structured data used throughout the ResumeEZ skill-gap system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Skill categories known to the ontology. Unknown categories are carried
// through unchanged; scoring falls back to a default multiplier for them.
const (
	CategoryLanguage    = "language"
	CategoryFramework   = "framework"
	CategoryTool        = "tool"
	CategoryCloud       = "cloud"
	CategoryDatabase    = "database"
	CategoryAPI         = "api"
	CategoryAIML        = "ai_ml"
	CategoryMethodology = "methodology"
	CategorySoft        = "soft"
)

// MatchType records how a surface term was resolved to a canonical skill.
type MatchType string

const (
	MatchExact MatchType = "exact"
	MatchFuzzy MatchType = "fuzzy"
)

// Section is the JD requirement tier a skill mention was found under.
type Section string

const (
	SectionRequired  Section = "required"
	SectionPreferred Section = "preferred"
	SectionGeneral   Section = "general"
)

// Skill is the canonical ontology record for a skill concept.
// Identity is ID; instances are value copies and safe to embed.
type Skill struct {
	ID            string  `json:"id"`
	CanonicalName string  `json:"canonical_name"`
	Category      string  `json:"category"`
	Domain        string  `json:"domain,omitempty"`
	BaseWeight    float64 `json:"base_weight"`
}

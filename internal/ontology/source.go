package ontology

import (
	"context"

	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

// SynonymRow maps one surface string to a skill.
type SynonymRow struct {
	SkillID string `json:"skill_id"`
	Synonym string `json:"synonym"`
}

// PrerequisiteRow is one directed edge: SkillID depends on PrerequisiteID.
type PrerequisiteRow struct {
	SkillID        string `json:"skill_id"`
	PrerequisiteID string `json:"prerequisite_id"`
}

// SubtopicRow is one learning subtopic for a skill. OrderIndex controls the
// display order within the skill.
type SubtopicRow struct {
	SkillID    string `json:"skill_id"`
	Subtopic   string `json:"subtopic"`
	OrderIndex int    `json:"order_index"`
}

// Catalog is the bulk shape a Source yields: the full active skill catalog
// plus its synonym, prerequisite and subtopic tables.
type Catalog struct {
	Skills        []types.Skill     `json:"skills"`
	Synonyms      []SynonymRow      `json:"synonyms"`
	Prerequisites []PrerequisiteRow `json:"prerequisites"`
	Subtopics     []SubtopicRow     `json:"subtopics"`
}

// Source yields the full active catalog in bulk. How the backing data is
// populated, versioned or persisted is outside this package.
type Source interface {
	Catalog(ctx context.Context) (*Catalog, error)
}

package db

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/thapanirajan/ResumeEZ-backend/internal/ontology"
	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

// Catalog loads the full skill ontology: canonical skills plus their
// synonyms, prerequisite edges and subtopics. The four tables are
// independent, so they load concurrently; any failure aborts the whole
// load so the caller never sees a partial catalog.
func (db *DB) Catalog(ctx context.Context) (*ontology.Catalog, error) {
	var catalog ontology.Catalog

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		skills, err := db.loadSkills(ctx)
		catalog.Skills = skills
		return err
	})
	g.Go(func() error {
		synonyms, err := db.loadSynonyms(ctx)
		catalog.Synonyms = synonyms
		return err
	})
	g.Go(func() error {
		prereqs, err := db.loadPrerequisites(ctx)
		catalog.Prerequisites = prereqs
		return err
	})
	g.Go(func() error {
		subtopics, err := db.loadSubtopics(ctx)
		catalog.Subtopics = subtopics
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

func (db *DB) loadSkills(ctx context.Context) ([]types.Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, canonical_name, category, domain, base_weight
		 FROM skill_ontology WHERE is_active ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}
	defer rows.Close()

	var skills []types.Skill
	for rows.Next() {
		var s types.Skill
		if err := rows.Scan(&s.ID, &s.CanonicalName, &s.Category, &s.Domain, &s.BaseWeight); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (db *DB) loadSynonyms(ctx context.Context) ([]ontology.SynonymRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT s.skill_id, s.synonym
		 FROM skill_synonyms s
		 JOIN skill_ontology o ON o.id = s.skill_id
		 WHERE o.is_active ORDER BY s.skill_id, s.synonym`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load synonyms: %w", err)
	}
	defer rows.Close()

	var synonyms []ontology.SynonymRow
	for rows.Next() {
		var row ontology.SynonymRow
		if err := rows.Scan(&row.SkillID, &row.Synonym); err != nil {
			return nil, fmt.Errorf("failed to scan synonym: %w", err)
		}
		synonyms = append(synonyms, row)
	}
	return synonyms, rows.Err()
}

func (db *DB) loadPrerequisites(ctx context.Context) ([]ontology.PrerequisiteRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT skill_id, prerequisite_id
		 FROM skill_dependencies ORDER BY skill_id, prerequisite_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load prerequisites: %w", err)
	}
	defer rows.Close()

	var prereqs []ontology.PrerequisiteRow
	for rows.Next() {
		var row ontology.PrerequisiteRow
		if err := rows.Scan(&row.SkillID, &row.PrerequisiteID); err != nil {
			return nil, fmt.Errorf("failed to scan prerequisite: %w", err)
		}
		prereqs = append(prereqs, row)
	}
	return prereqs, rows.Err()
}

func (db *DB) loadSubtopics(ctx context.Context) ([]ontology.SubtopicRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT skill_id, subtopic, order_index
		 FROM skill_subtopics ORDER BY skill_id, order_index`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load subtopics: %w", err)
	}
	defer rows.Close()

	var subtopics []ontology.SubtopicRow
	for rows.Next() {
		var row ontology.SubtopicRow
		if err := rows.Scan(&row.SkillID, &row.Subtopic, &row.OrderIndex); err != nil {
			return nil, fmt.Errorf("failed to scan subtopic: %w", err)
		}
		subtopics = append(subtopics, row)
	}
	return subtopics, rows.Err()
}

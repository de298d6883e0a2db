package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

// SaveAnalysis stores a completed analysis and returns its ID. The matched,
// missing, extra and roadmap payloads are stored as JSONB so the record
// reads back without recomputation.
func (db *DB) SaveAnalysis(ctx context.Context, analysis *types.Analysis) (uuid.UUID, error) {
	matched, err := json.Marshal(analysis.Matched)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal matched skills: %w", err)
	}
	missing, err := json.Marshal(analysis.Missing)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal missing skills: %w", err)
	}
	extra, err := json.Marshal(analysis.Extra)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal extra skills: %w", err)
	}
	roadmap, err := json.Marshal(analysis.Roadmap)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (jd_hash, match_percentage, hard_skill_match, soft_skill_match,
		                       matched_skills, missing_skills, extra_skills, gap_report, roadmap, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		analysis.JDHash, analysis.MatchPercentage, analysis.HardSkillMatch, analysis.SoftSkillMatch,
		matched, missing, extra, analysis.GapReport, roadmap, analysis.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored analysis by ID. Returns nil without error
// when no record exists.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.Analysis, error) {
	var analysis types.Analysis
	var matched, missing, extra, roadmap []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, jd_hash, match_percentage, hard_skill_match, soft_skill_match,
		        matched_skills, missing_skills, extra_skills, gap_report, roadmap, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&analysis.ID, &analysis.JDHash, &analysis.MatchPercentage,
		&analysis.HardSkillMatch, &analysis.SoftSkillMatch,
		&matched, &missing, &extra, &analysis.GapReport, &roadmap, &analysis.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if err := json.Unmarshal(matched, &analysis.Matched); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matched skills: %w", err)
	}
	if err := json.Unmarshal(missing, &analysis.Missing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal missing skills: %w", err)
	}
	if err := json.Unmarshal(extra, &analysis.Extra); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extra skills: %w", err)
	}
	if err := json.Unmarshal(roadmap, &analysis.Roadmap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roadmap: %w", err)
	}
	return &analysis, nil
}

// ListAnalyses retrieves recent analyses without their JSONB payloads.
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]types.Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, jd_hash, match_percentage, hard_skill_match, soft_skill_match, gap_report, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []types.Analysis
	for rows.Next() {
		var a types.Analysis
		if err := rows.Scan(&a.ID, &a.JDHash, &a.MatchPercentage,
			&a.HardSkillMatch, &a.SoftSkillMatch, &a.GapReport, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

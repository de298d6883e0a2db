package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/thapanirajan/ResumeEZ-backend/internal/analysis"
	"github.com/thapanirajan/ResumeEZ-backend/internal/jd"
	"github.com/thapanirajan/ResumeEZ-backend/internal/scoring"
	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

type extractJDRequest struct {
	Text string `json:"text" validate:"required"`
}

type extractResumeRequest struct {
	Resume map[string]any `json:"resume" validate:"required"`
}

type matchRequest struct {
	ResumeSkills []types.ResumeSkill `json:"resume_skills" validate:"required"`
	JDSkills     []types.JDSkill     `json:"jd_skills" validate:"required"`
	// JDText, when present, recomputes the JD weights from the raw text so
	// frequency and section boosts apply. Without it, skills missing a
	// computed weight fall back to their base weight.
	JDText string `json:"jd_text,omitempty"`
}

type roadmapRequest struct {
	MissingSkills []types.MissingSkill `json:"missing_skills" validate:"required"`
	KnownSkillIDs []string             `json:"known_skill_ids,omitempty"`
}

type analyzeRequest struct {
	JDText string         `json:"jd_text" validate:"required"`
	Resume map[string]any `json:"resume" validate:"required"`
	// Persist stores the analysis for later retrieval. Requires a database.
	Persist bool `json:"persist,omitempty"`
}

// analyzer builds a pipeline over the current ontology snapshot. Each
// request binds to one snapshot; a concurrent reload never tears state
// mid-request.
func (s *Server) analyzer() *analysis.Analyzer {
	return analysis.NewAnalyzerWithThreshold(s.store.Snapshot(), s.fuzzyThreshold)
}

// decodeAndValidate decodes the request body and runs struct validation.
// Writes the error response itself and reports whether to proceed.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return false
	}
	return true
}

// handleExtractJD extracts canonical skills from raw job description text.
func (s *Server) handleExtractJD(w http.ResponseWriter, r *http.Request) {
	var req extractJDRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	extraction := s.analyzer().ExtractJDSkills(req.Text)
	extraction.Skills = scoring.ComputeJDWeights(extraction.Skills, extraction.Normalized)
	s.jsonResponse(w, http.StatusOK, extraction)
}

// handleExtractResume extracts canonical skills from structured resume data.
func (s *Server) handleExtractResume(w http.ResponseWriter, r *http.Request) {
	var req extractResumeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	skills := s.analyzer().ExtractResumeSkills(req.Resume)
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

// handleMatch compares extracted resume skills against extracted JD skills.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	jdSkills := req.JDSkills
	if req.JDText != "" {
		// Frequency counting is defined over normalized text, so raw
		// client input has to go through the same normalization as the
		// extraction path.
		jdSkills = scoring.ComputeJDWeights(jdSkills, jd.Normalize(req.JDText))
	} else {
		jdSkills = scoring.EnsureComputedWeights(jdSkills)
	}

	result := s.analyzer().MatchSkills(req.ResumeSkills, jdSkills)
	summary := scoring.ComputeScores(result.Matched, jdSkills)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"matched": result.Matched,
		"missing": result.Missing,
		"extra":   result.Extra,
		"scores":  summary,
	})
}

// handleRoadmap builds a phased learning roadmap from missing skills.
func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	var req roadmapRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	missing := scoring.RankMissing(missingByID(req.MissingSkills))
	known := make(map[string]bool, len(req.KnownSkillIDs))
	for _, id := range req.KnownSkillIDs {
		known[id] = true
	}

	roadmap := s.analyzer().BuildRoadmap(missing, known)
	s.jsonResponse(w, http.StatusOK, roadmap)
}

// handleAnalyze runs the full pipeline on a JD/resume pair.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result := s.analyzer().Analyze(req.JDText, req.Resume)

	if req.Persist {
		if s.db == nil {
			s.errorResponse(w, http.StatusBadRequest, "persistence requires a database-backed server")
			return
		}
		id, err := s.db.SaveAnalysis(r.Context(), result)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to save analysis")
			return
		}
		result.ID = id.String()
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetAnalysis retrieves a stored analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "analysis storage is not enabled")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	result, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load analysis")
		return
	}
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "analysis not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleListAnalyses lists recent stored analyses without payloads.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "analysis storage is not enabled")
		return
	}

	analyses, err := s.db.ListAnalyses(r.Context(), 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if analyses == nil {
		analyses = []types.Analysis{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": analyses})
}

// missingByID rekeys a missing-skill list for ranking, dropping duplicates.
func missingByID(missing []types.MissingSkill) map[string]types.MissingSkill {
	out := make(map[string]types.MissingSkill, len(missing))
	for _, m := range missing {
		if _, ok := out[m.SkillID]; !ok {
			out[m.SkillID] = m
		}
	}
	return out
}

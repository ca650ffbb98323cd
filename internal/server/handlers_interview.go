package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/interview-prep/internal/types"
)

// handleRecommendations returns an interview plan for the profile's
// stored resume. The analyzer never fails: without a working model it
// returns the default plan.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	profile, err := s.store.GetProfile(r.Context(), uid)
	if err != nil {
		domainError(w, err)
		return
	}
	if profile == nil {
		domainError(w, &ErrProfileNotFound{UID: uid})
		return
	}

	record, err := s.store.GetResume(r.Context(), uid)
	if err != nil {
		domainError(w, err)
		return
	}
	if record == nil {
		domainError(w, &ErrResumeNotFound{UID: uid})
		return
	}

	ctx, cancel := s.aiContext(r)
	defer cancel()
	plan := s.analyzer.RecommendPlan(ctx, record)

	jsonResponse(w, http.StatusOK, map[string]any{
		"recommendations": plan,
		"resume_summary": map[string]any{
			"name":             record.FullName,
			"years_experience": record.YearsOfExperience,
			"skills_count":     len(record.Skills),
			"projects_count":   len(record.Projects),
			"key_strengths":    record.KeyStrengths,
		},
	})
}

// GenerateQuestionsRequest is the body for POST /questions/generate.
// UID is optional: without it (or without a stored resume) the questions
// are generic rather than personalized.
type GenerateQuestionsRequest struct {
	UID    string `json:"uid"`
	Goal   string `json:"goal" validate:"required"`
	Level  string `json:"level" validate:"required"`
	Domain string `json:"domain" validate:"required"`
}

func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req GenerateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		domainError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if err := s.validate.Struct(req); err != nil {
		domainError(w, &ErrValidation{Message: "goal, level and domain are required"})
		return
	}

	var record *types.ResumeRecord
	if req.UID != "" {
		var err error
		record, err = s.store.GetResume(r.Context(), req.UID)
		if err != nil {
			log.Printf("[server] resume lookup failed for %s, generating generic questions: %v", req.UID, err)
			record = nil
		}
	}

	ctx, cancel := s.aiContext(r)
	defer cancel()
	qs := s.generator.Generate(ctx, types.QuestionConfig{
		Goal:   req.Goal,
		Level:  req.Level,
		Domain: req.Domain,
	}, record)

	jsonResponse(w, http.StatusOK, map[string]any{
		"questions": qs,
		"total":     len(qs),
		"config": map[string]string{
			"goal":   req.Goal,
			"level":  req.Level,
			"domain": req.Domain,
		},
	})
}

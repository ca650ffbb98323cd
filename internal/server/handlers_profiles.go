package server

import (
	"encoding/json"
	"net/http"
)

// CreateProfileRequest is the body for POST /profiles.
type CreateProfileRequest struct {
	UID   string `json:"uid" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		domainError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if err := s.validate.Struct(req); err != nil {
		domainError(w, &ErrValidation{Message: "uid and a valid email are required"})
		return
	}

	existing, err := s.store.GetProfile(r.Context(), req.UID)
	if err != nil {
		domainError(w, err)
		return
	}
	if existing != nil {
		jsonResponse(w, http.StatusOK, map[string]any{
			"message": "profile already exists",
			"profile": existing,
		})
		return
	}

	profile, err := s.store.UpsertProfile(r.Context(), req.UID, req.Email, req.Name, req.Phone)
	if err != nil {
		domainError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]any{
		"message": "profile created",
		"profile": profile,
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
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

	jsonResponse(w, http.StatusOK, profile)
}

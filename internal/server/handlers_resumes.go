package server

import (
	"io"
	"log"
	"net/http"
)

// maxUploadBytes caps resume uploads at 10 MB.
const maxUploadBytes = 10 << 20

// handleUploadResume accepts a multipart resume file, runs the parsing
// pipeline, and stores the extracted record. Parsing never fails the
// request: unreadable files produce a minimal record with the file name
// attached.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
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

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		domainError(w, &ErrValidation{Message: "invalid multipart body"})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		domainError(w, &ErrNoFile{})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		domainError(w, &ErrValidation{Message: "failed to read uploaded file"})
		return
	}

	ctx, cancel := s.aiContext(r)
	defer cancel()
	record := s.parser.Parse(ctx, data, header.Filename, profile.Email)

	existing, err := s.store.GetResume(r.Context(), uid)
	if err != nil {
		domainError(w, err)
		return
	}
	if err := s.store.UpsertResume(r.Context(), uid, record); err != nil {
		domainError(w, err)
		return
	}

	// A parsed name beats whatever was provided at signup.
	if record.FullName != "" && record.FullName != profile.Name {
		if err := s.store.UpdateProfileName(r.Context(), uid, record.FullName); err != nil {
			log.Printf("[server] failed to update profile name for %s: %v", uid, err)
		}
	}

	status := http.StatusOK
	if existing == nil {
		status = http.StatusCreated
	}
	jsonResponse(w, status, map[string]any{
		"message": "resume analyzed and saved",
		"resume":  record,
	})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
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

	jsonResponse(w, http.StatusOK, record)
}

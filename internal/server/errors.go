package server

import (
	"fmt"
	"net/http"
)

// ErrProfileNotFound indicates no profile exists for the given UID.
type ErrProfileNotFound struct {
	UID string
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("profile not found: %s", e.UID)
}

// ErrResumeNotFound indicates a profile exists but has no uploaded resume.
type ErrResumeNotFound struct {
	UID string
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found for profile: %s", e.UID)
}

// ErrValidation indicates a malformed or incomplete request body.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

// ErrNoFile indicates a resume upload without a file part.
type ErrNoFile struct{}

func (e *ErrNoFile) Error() string {
	return "no file uploaded"
}

// HTTPStatus maps domain errors to response codes.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrProfileNotFound, *ErrResumeNotFound:
		return http.StatusNotFound
	case *ErrValidation, *ErrNoFile:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

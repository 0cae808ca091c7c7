package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"clubsync-backend/internal/logger"
	"clubsync-backend/internal/repository"
	"clubsync-backend/internal/security"
	"clubsync-backend/internal/service"
)

// writeJSON writes v as the JSON response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeMessage writes a bare {"message": ...} body.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeError maps service and repository errors onto HTTP statuses.
// Internal errors surface their text in the message field.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, security.ErrInvalidToken), errors.Is(err, security.ErrExpiredToken):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden), errors.Is(err, security.ErrWrongPrincipal):
		writeMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyApplied),
		errors.Is(err, service.ErrSlotUnavailable),
		errors.Is(err, service.ErrRecruitmentClosed),
		errors.Is(err, service.ErrBudgetLocked),
		errors.Is(err, repository.ErrDuplicate):
		writeMessage(w, http.StatusConflict, err.Error())
	default:
		logger.Error("internal error", "error", err)
		writeMessage(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeBody decodes the request body into dst, rejecting malformed
// JSON with a wrapped invalid-input error.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	return nil
}

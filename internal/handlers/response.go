package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"guild-manager/internal/core/domain"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"error": message})
}

// respondDomainError maps service errors onto status codes: rejected
// removals and catalog adds on an empty roster conflict, missing entities
// are not found, upstream fetch failures surface as bad gateway.
func respondDomainError(w http.ResponseWriter, err error) {
	var guard *domain.GuardViolationError
	var notFound *domain.NotFoundError

	switch {
	case errors.As(err, &guard):
		respondError(w, http.StatusConflict, guard.Error())
	case errors.As(err, &notFound):
		respondError(w, http.StatusNotFound, notFound.Error())
	case errors.Is(err, domain.ErrEmptyRoster):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrSourceUnavailable):
		respondError(w, http.StatusBadGateway, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

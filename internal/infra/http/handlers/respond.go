package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/libertyaulas/liberty-backoffice/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeError maps use-case errors onto HTTP statuses. Domain errors carry
// their code; anything unexpected is logged and reported as a plain 500.
func writeError(w http.ResponseWriter, err error) {
	if domainErr, ok := err.(*usecase.DomainError); ok {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case usecase.CodeNotFound:
			status = http.StatusNotFound
		case usecase.CodeSchedulingConflict:
			status = http.StatusConflict
		}
		writeJSON(w, status, errorResponse{Error: domainErr.Message, Code: domainErr.Code})
		return
	}

	if techErr, ok := err.(*usecase.TechnicalError); ok {
		log.Printf("technical error: %s: %s", techErr.Code, techErr.Message)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: techErr.Message, Code: techErr.Code})
		return
	}

	log.Printf("unexpected error: %v", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

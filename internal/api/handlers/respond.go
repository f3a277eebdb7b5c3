package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/aiguilog/aiguilog/internal/domain"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeServiceError maps errors no handler claims for itself. Detail goes
// to the log; the client gets a short French message.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	log.Printf("ERROR [%s] %v", op, err)
	if errors.Is(err, domain.ErrStorageUnavailable) {
		writeError(w, http.StatusServiceUnavailable, "Service momentanément indisponible, réessayez plus tard")
		return
	}
	writeError(w, http.StatusInternalServerError, "Erreur serveur")
}

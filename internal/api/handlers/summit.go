package handlers

import (
	"net/http"
	"strconv"

	"github.com/aiguilog/aiguilog/internal/service"
)

type SummitHandler struct {
	summitService *service.SummitService
}

func NewSummitHandler(summitService *service.SummitService) *SummitHandler {
	return &SummitHandler{summitService: summitService}
}

// Search never fails from the client's point of view: a degraded or empty
// lookup is an empty list, not an error.
func (h *SummitHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	results := h.summitService.Search(r.Context(), query, limit)
	writeJSON(w, http.StatusOK, results)
}

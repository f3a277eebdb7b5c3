package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aiguilog/aiguilog/internal/api/middleware"
	"github.com/aiguilog/aiguilog/internal/domain"
	"github.com/aiguilog/aiguilog/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OutingHandler struct {
	outingService *service.OutingService
}

func NewOutingHandler(outingService *service.OutingService) *OutingHandler {
	return &OutingHandler{outingService: outingService}
}

// OutingRequest doubles as the create body and the partial update body;
// on update, absent fields keep their stored value.
type OutingRequest struct {
	Type     *string `json:"type"`
	Sommet   *string `json:"sommet"`
	Altitude *int    `json:"altitude"`
	Denivele *int    `json:"denivele"`
	Methode  *string `json:"methode"`
	Cotation *string `json:"cotation"`
	Details  *string `json:"details"`
	Annee    *int    `json:"annee"`
	Date     *string `json:"date"`
}

type OutingResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Sommet    string  `json:"sommet"`
	Altitude  int     `json:"altitude"`
	Denivele  int     `json:"denivele"`
	Methode   string  `json:"methode"`
	Cotation  string  `json:"cotation"`
	Details   string  `json:"details"`
	Annee     *int    `json:"annee,omitempty"`
	Date      *string `json:"date,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

type outingEnvelope struct {
	Message string         `json:"message"`
	Outing  OutingResponse `json:"sortie"`
}

func newOutingResponse(o *domain.Outing) OutingResponse {
	resp := OutingResponse{
		ID:        o.ID.String(),
		Type:      string(o.Type),
		Sommet:    o.Sommet,
		Altitude:  o.Altitude,
		Denivele:  o.Denivele,
		Methode:   string(o.Methode),
		Cotation:  o.Cotation,
		Details:   o.Details,
		Annee:     o.Year,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
	if o.Date != nil {
		d := time.Time(*o.Date).Format(dateLayout)
		resp.Date = &d
	}
	return resp
}

func (h *OutingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token manquant")
		return
	}

	var req OutingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	if req.Type == nil || req.Sommet == nil || req.Altitude == nil ||
		req.Denivele == nil || req.Methode == nil {
		writeError(w, http.StatusBadRequest, "Champs obligatoires manquants")
		return
	}

	input := service.CreateOutingInput{
		Type:     domain.OutingType(*req.Type),
		Sommet:   *req.Sommet,
		Altitude: *req.Altitude,
		Denivele: *req.Denivele,
		Methode:  domain.Method(*req.Methode),
		Year:     req.Annee,
	}
	if req.Cotation != nil {
		input.Cotation = *req.Cotation
	}
	if req.Details != nil {
		input.Details = *req.Details
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Date invalide")
			return
		}
		input.Date = &date
	}

	outing, err := h.outingService.Create(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Champs obligatoires manquants ou invalides")
			return
		}
		writeServiceError(w, "outing.Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, outingEnvelope{
		Message: "Sortie ajoutée",
		Outing:  newOutingResponse(outing),
	})
}

func (h *OutingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token manquant")
		return
	}

	var done *bool
	switch r.URL.Query().Get("done") {
	case "true":
		v := true
		done = &v
	case "false":
		v := false
		done = &v
	}

	outings, err := h.outingService.List(r.Context(), userID, done)
	if err != nil {
		writeServiceError(w, "outing.List", err)
		return
	}

	resp := make([]OutingResponse, 0, len(outings))
	for _, o := range outings {
		resp = append(resp, newOutingResponse(o))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *OutingHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token manquant")
		return
	}

	outingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Sortie non trouvée")
		return
	}

	var req OutingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	patch := domain.OutingPatch{
		Sommet:   req.Sommet,
		Altitude: req.Altitude,
		Denivele: req.Denivele,
		Cotation: req.Cotation,
		Details:  req.Details,
		Year:     req.Annee,
	}
	if req.Type != nil {
		t := domain.OutingType(*req.Type)
		patch.Type = &t
	}
	if req.Methode != nil {
		m := domain.Method(*req.Methode)
		patch.Methode = &m
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Date invalide")
			return
		}
		patch.Date = &date
	}

	outing, err := h.outingService.Update(r.Context(), userID, outingID, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Sortie non trouvée")
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, "Champs obligatoires manquants ou invalides")
		default:
			writeServiceError(w, "outing.Update", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, outingEnvelope{
		Message: "Sortie modifiée",
		Outing:  newOutingResponse(outing),
	})
}

func (h *OutingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token manquant")
		return
	}

	outingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Sortie non trouvée")
		return
	}

	if err := h.outingService.Delete(r.Context(), userID, outingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Sortie non trouvée")
			return
		}
		writeServiceError(w, "outing.Delete", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Sortie supprimée"})
}

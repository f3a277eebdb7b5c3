package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aiguilog/aiguilog/internal/api/middleware"
	"github.com/aiguilog/aiguilog/internal/domain"
	"github.com/aiguilog/aiguilog/internal/service"
)

const dateLayout = "2006-01-02"

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	FirstName string `json:"prenom"`
	LastName  string `json:"nom"`
	Pseudo    string `json:"pseudo"`
	Password  string `json:"password"`
	BirthDate string `json:"dateNaissance"`
}

type LoginRequest struct {
	Pseudo   string `json:"pseudo"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"prenom"`
	LastName  string `json:"nom"`
	Pseudo    string `json:"pseudo"`
	BirthDate string `json:"dateNaissance"`
	CreatedAt string `json:"createdAt"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Pseudo:    u.Pseudo,
		BirthDate: time.Time(u.BirthDate).Format(dateLayout),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Pseudo == "" ||
		req.Password == "" || req.BirthDate == "" {
		writeError(w, http.StatusBadRequest, "Tous les champs sont obligatoires")
		return
	}

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Date de naissance invalide")
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Pseudo:    req.Pseudo,
		Password:  req.Password,
		BirthDate: birthDate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPseudoTaken) {
			writeError(w, http.StatusConflict, "Pseudo déjà utilisé")
			return
		}
		writeServiceError(w, "auth.Register", err)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Message: "Utilisateur créé",
		Token:   result.Token,
		User:    newUserResponse(result.User),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	if req.Pseudo == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Pseudo et mot de passe requis")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Pseudo:   req.Pseudo,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Pseudo ou mot de passe incorrect")
			return
		}
		writeServiceError(w, "auth.Login", err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Message: "Connexion réussie",
		Token:   result.Token,
		User:    newUserResponse(result.User),
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token manquant")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Utilisateur non trouvé")
			return
		}
		writeServiceError(w, "auth.Me", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]UserResponse{"user": newUserResponse(user)})
}

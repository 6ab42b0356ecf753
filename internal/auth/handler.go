package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type Handler struct {
	provider Provider
	validate *validator.Validate
}

func NewHandler(provider Provider) *Handler {
	return &Handler{
		provider: provider,
		validate: validator.New(),
	}
}

// CredentialsRequest is format-checked locally; everything else about the
// credentials is the provider's business.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	h.passthrough(w, r, h.provider.SignUp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	h.passthrough(w, r, h.provider.SignIn)
}

func (h *Handler) passthrough(w http.ResponseWriter, r *http.Request, call func(ctx context.Context, email, password string) (*ProviderResult, error)) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "a valid email and a password are required")
		return
	}

	res, err := call(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Printf("Auth provider call failed: %v", err)
		writeError(w, http.StatusBadGateway, "auth provider unreachable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Status)
	w.Write(res.Body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

package score

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"studyai-server/internal/models"
)

// Awarder is what the handler needs from the service.
type Awarder interface {
	AwardPoints(ctx context.Context, userID string, points int) error
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
}

type Handler struct {
	service Awarder
}

func NewHandler(service Awarder) *Handler {
	return &Handler{service: service}
}

type AwardRequest struct {
	UserID string `json:"user_id"`
	Points int    `json:"points"`
}

func (h *Handler) AwardCR(w http.ResponseWriter, r *http.Request) {
	var req AwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := h.service.AwardPoints(r.Context(), req.UserID, req.Points); err != nil {
		log.Printf("Error awarding CR points: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to award points")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "CR points awarded"})
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Leaderboard(r.Context())
	if err != nil {
		log.Printf("Error reading leaderboard: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to read leaderboard")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

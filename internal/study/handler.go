package study

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"studyai-server/internal/ai"
	"studyai-server/internal/extract"
)

const maxUploadBytes = 32 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ProcessNotes(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart form data")
		return
	}

	title := r.FormValue("title")
	userID := r.FormValue("user_id")
	if title == "" || userID == "" {
		writeError(w, http.StatusBadRequest, "title and user_id are required")
		return
	}

	var fileData []byte
	var contentType string
	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		fileData, err = io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "could not read uploaded file")
			return
		}
		contentType = header.Header.Get("Content-Type")
	case !errors.Is(err, http.ErrMissingFile):
		writeError(w, http.StatusBadRequest, "invalid file upload")
		return
	}

	set, err := h.service.ProcessNotes(r.Context(), title, userID, fileData, contentType, r.FormValue("text"))
	if err != nil {
		respondPipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":      "Study set created successfully",
		"study_set_id": set.ID,
	})
}

func (h *Handler) GetStudySet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid study set id")
		return
	}

	set, items, err := h.service.GetStudySet(r.Context(), id)
	if err != nil {
		respondPipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"study_set":   set,
		"study_items": items,
	})
}

func (h *Handler) ListStudySets(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]

	sets, err := h.service.ListStudySets(r.Context(), userID)
	if err != nil {
		respondPipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sets)
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid study set id")
		return
	}

	questions, err := h.service.GenerateQuiz(r.Context(), id)
	if err != nil {
		respondPipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, questions)
}

// respondPipelineError maps the pipeline's error kinds onto HTTP statuses:
// content faults are the client's, generation faults are the model
// provider's, everything else is ours.
func respondPipelineError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, extract.ErrMissingContent),
		errors.Is(err, extract.ErrContentTooShort),
		errors.Is(err, extract.ErrExtraction):
		status = http.StatusBadRequest
	case errors.Is(err, ai.ErrService):
		status = http.StatusServiceUnavailable
	case errors.Is(err, ai.ErrInvalidResponse):
		status = http.StatusBadGateway
	case errors.Is(err, gorm.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, "study set not found")
		return
	case errors.Is(err, ErrPersistence):
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		log.Printf("Pipeline error: %v", err)
	}
	writeError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

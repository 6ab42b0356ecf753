// Package study implements the note-ingestion pipeline: extract source text,
// generate flashcards or a quiz, and persist the results.
package study

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"studyai-server/internal/ai"
	"studyai-server/internal/extract"
	"studyai-server/internal/models"
)

var ErrPersistence = errors.New("failed to save study material")

// Store is the persistence surface the pipeline needs.
type Store interface {
	CreateSetWithItems(ctx context.Context, set *models.StudySet, items []models.StudyItem) error
	GetSet(ctx context.Context, id uuid.UUID) (*models.StudySet, []models.StudyItem, error)
	ListSetsByUser(ctx context.Context, userID string) ([]models.StudySetSummary, error)
}

type Service struct {
	store Store
	gen   ai.Generator
}

func NewService(store Store, gen ai.Generator) *Service {
	return &Service{store: store, gen: gen}
}

// ProcessNotes runs the full pipeline for one request, strictly in order:
// extract, generate, persist. Any stage failing stops the rest.
func (s *Service) ProcessNotes(ctx context.Context, title, userID string, fileData []byte, contentType, literalText string) (*models.StudySet, error) {
	sourceText, err := extract.FromUpload(fileData, contentType, literalText)
	if err != nil {
		return nil, err
	}

	cards, err := s.gen.Flashcards(ctx, sourceText)
	if err != nil {
		return nil, err
	}

	set := &models.StudySet{
		UserID:     userID,
		Title:      title,
		SourceText: sourceText,
	}
	items := make([]models.StudyItem, len(cards))
	for i, card := range cards {
		items[i] = models.StudyItem{
			UserID:   userID,
			Question: card.Question,
			Answer:   card.Answer,
		}
	}

	if err := s.store.CreateSetWithItems(ctx, set, items); err != nil {
		log.Printf("Error persisting study set for user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return set, nil
}

func (s *Service) GetStudySet(ctx context.Context, id uuid.UUID) (*models.StudySet, []models.StudyItem, error) {
	return s.store.GetSet(ctx, id)
}

func (s *Service) ListStudySets(ctx context.Context, userID string) ([]models.StudySetSummary, error) {
	return s.store.ListSetsByUser(ctx, userID)
}

// GenerateQuiz re-derives a quiz from the set's stored source text. Nothing
// is cached or persisted, so repeated calls yield fresh questions.
func (s *Service) GenerateQuiz(ctx context.Context, id uuid.UUID) ([]models.QuizQuestion, error) {
	set, _, err := s.store.GetSet(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.gen.Quiz(ctx, set.SourceText)
}

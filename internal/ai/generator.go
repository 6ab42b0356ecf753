// Package ai turns validated source text into structured study content by
// calling a generative model and parsing its JSON response.
package ai

import (
	"context"
	"errors"

	"studyai-server/internal/models"
)

var (
	// ErrInvalidResponse means the model answered but the payload did not
	// match the requested JSON contract.
	ErrInvalidResponse = errors.New("model returned an unusable response")
	// ErrService means the model could not be reached or the call failed.
	ErrService = errors.New("generation service unavailable")
)

// Generator produces study content from source text. Calls are single
// blocking round trips; failures are never retried here.
type Generator interface {
	Flashcards(ctx context.Context, sourceText string) ([]models.Flashcard, error)
	Quiz(ctx context.Context, sourceText string) ([]models.QuizQuestion, error)
}

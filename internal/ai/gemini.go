package ai

import (
	"context"
	"errors"
	"fmt"

	genai "google.golang.org/genai"

	"studyai-server/internal/models"
)

const defaultModel = "gemini-2.5-flash"

// Gemini implements Generator against the Google Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("missing Gemini API key")
	}
	if model == "" {
		model = defaultModel
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: c, model: model}, nil
}

func (g *Gemini) Flashcards(ctx context.Context, sourceText string) ([]models.Flashcard, error) {
	count := targetCount(sourceText, flashcardWordsPerItem, flashcardMinCount, flashcardMaxCount)
	raw, err := g.prompt(ctx, flashcardSystemPrompt, flashcardUserPrompt(count, sourceText))
	if err != nil {
		return nil, err
	}
	return parseFlashcards(raw)
}

func (g *Gemini) Quiz(ctx context.Context, sourceText string) ([]models.QuizQuestion, error) {
	count := targetCount(sourceText, quizWordsPerItem, quizMinCount, quizMaxCount)
	raw, err := g.prompt(ctx, quizSystemPrompt, quizUserPrompt(count, sourceText))
	if err != nil {
		return nil, err
	}
	questions, err := parseQuiz(raw)
	if err != nil {
		return nil, err
	}
	shuffleOptions(questions)
	return questions, nil
}

func (g *Gemini) prompt(ctx context.Context, system, user string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(user, genai.RoleUser),
	}, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		ResponseMIMEType:  "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}
	return res.Text(), nil
}

package ai

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"studyai-server/internal/models"
)

func parseFlashcards(raw string) ([]models.Flashcard, error) {
	list, err := listField(raw, "study_items")
	if err != nil {
		return nil, err
	}

	cards := make([]models.Flashcard, 0, len(list))
	for _, el := range list {
		var card models.Flashcard
		if err := json.Unmarshal(el, &card); err != nil {
			return nil, fmt.Errorf("%w: study item is not an object: %v", ErrInvalidResponse, err)
		}
		if card.Question == "" || card.Answer == "" {
			return nil, fmt.Errorf("%w: study item missing question or answer", ErrInvalidResponse)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func parseQuiz(raw string) ([]models.QuizQuestion, error) {
	list, err := listField(raw, "quiz_questions")
	if err != nil {
		return nil, err
	}

	questions := make([]models.QuizQuestion, 0, len(list))
	for _, el := range list {
		var q models.QuizQuestion
		if err := json.Unmarshal(el, &q); err != nil {
			return nil, fmt.Errorf("%w: quiz question is not an object: %v", ErrInvalidResponse, err)
		}
		if q.Question == "" || q.CorrectAnswer == "" {
			return nil, fmt.Errorf("%w: quiz question missing question or correct answer", ErrInvalidResponse)
		}
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("%w: quiz question has %d options, want 4", ErrInvalidResponse, len(q.Options))
		}
		if !contains(q.Options, q.CorrectAnswer) {
			return nil, fmt.Errorf("%w: correct answer missing from options", ErrInvalidResponse)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// listField decodes the response as a JSON object and extracts the list under
// the given key.
func listField(raw, key string) ([]json.RawMessage, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	rawList, ok := obj[key]
	if !ok {
		return nil, fmt.Errorf("%w: response has no %q key", ErrInvalidResponse, key)
	}
	var list []json.RawMessage
	if err := json.Unmarshal(rawList, &list); err != nil {
		return nil, fmt.Errorf("%w: %q is not a list", ErrInvalidResponse, key)
	}
	return list, nil
}

func decodeObject(raw string) (map[string]json.RawMessage, error) {
	js := stripCodeFences(raw)
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(js), &obj); err != nil {
		// Models sometimes wrap the object in prose; recover the first
		// balanced JSON object before giving up.
		if s := firstJSONObject(js); s != "" {
			if err2 := json.Unmarshal([]byte(s), &obj); err2 == nil {
				return obj, nil
			}
		}
		return nil, fmt.Errorf("%w: not valid JSON: %v", ErrInvalidResponse, err)
	}
	return obj, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if i := strings.Index(s, "\n"); i != -1 {
			s = s[i+1:]
		}
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

func firstJSONObject(s string) string {
	start := -1
	depth := 0
	for i, r := range s {
		switch r {
		case '{':
			if start == -1 {
				start = i
			}
			depth++
		case '}':
			if start != -1 {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}

// shuffleOptions draws a fresh uniform permutation of each question's options
// so the correct answer's position is never predictable across requests.
// Deliberately unseeded and non-reproducible.
func shuffleOptions(questions []models.QuizQuestion) {
	for i := range questions {
		opts := questions[i].Options
		rand.Shuffle(len(opts), func(a, b int) {
			opts[a], opts[b] = opts[b], opts[a]
		})
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

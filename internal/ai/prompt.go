package ai

import (
	"fmt"
	"strings"
)

const (
	flashcardPromptLimit = 3000
	quizPromptLimit      = 4000

	flashcardWordsPerItem = 150
	quizWordsPerItem      = 200

	flashcardMinCount = 3
	flashcardMaxCount = 15
	quizMinCount      = 3
	quizMaxCount      = 10
)

const flashcardSystemPrompt = "You are a study aid generator. You turn lecture notes into concise " +
	"question and answer flashcards. Respond with a single JSON object and nothing else."

const quizSystemPrompt = "You are a quiz designer. You write multiple-choice questions that test " +
	"understanding of lecture notes. Respond with a single JSON object and nothing else."

func flashcardUserPrompt(count int, sourceText string) string {
	return fmt.Sprintf(`Create exactly %d flashcards from the notes below.
Return one JSON object of this exact form:
{"study_items": [{"question": "...", "answer": "..."}]}
Do not include any text outside the JSON object.

Notes:
%s`, count, truncate(sourceText, flashcardPromptLimit))
}

func quizUserPrompt(count int, sourceText string) string {
	return fmt.Sprintf(`Create exactly %d multiple-choice questions from the notes below.
Return one JSON object of this exact form:
{"quiz_questions": [{"question": "...", "correct_answer": "...", "options": ["...", "...", "...", "..."]}]}
Each question must have exactly 4 options: the correct answer plus 3 plausible distractors.
Do not include any text outside the JSON object.

Notes:
%s`, count, truncate(sourceText, quizPromptLimit))
}

// targetCount scales the number of generated items with the length of the
// source text, clamped to an inclusive range.
func targetCount(sourceText string, wordsPerItem, min, max int) int {
	n := len(strings.Fields(sourceText)) / wordsPerItem
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// truncate cuts the prompt text at a fixed context-window safeguard. Material
// beyond the limit is ignored for generation; the full text is still what
// gets persisted.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

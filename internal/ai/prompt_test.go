package ai

import (
	"strings"
	"testing"
)

func TestTargetCount_Clamps(t *testing.T) {
	tests := []struct {
		name  string
		words int
		per   int
		min   int
		max   int
		want  int
	}{
		{"short text hits flashcard floor", 10, flashcardWordsPerItem, flashcardMinCount, flashcardMaxCount, 3},
		{"long text hits flashcard ceiling", 10000, flashcardWordsPerItem, flashcardMinCount, flashcardMaxCount, 15},
		{"mid-length text scales", 600, flashcardWordsPerItem, flashcardMinCount, flashcardMaxCount, 4},
		{"short text hits quiz floor", 10, quizWordsPerItem, quizMinCount, quizMaxCount, 3},
		{"long text hits quiz ceiling", 10000, quizWordsPerItem, quizMinCount, quizMaxCount, 10},
		{"mid-length quiz scales", 1000, quizWordsPerItem, quizMinCount, quizMaxCount, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := strings.TrimSpace(strings.Repeat("word ", tt.words))
			if got := targetCount(source, tt.per, tt.min, tt.max); got != tt.want {
				t.Errorf("targetCount(%d words) = %d, want %d", tt.words, got, tt.want)
			}
		})
	}
}

func TestTargetCount_AlwaysInRange(t *testing.T) {
	for words := 0; words <= 5000; words += 250 {
		source := strings.Repeat("w ", words)
		n := targetCount(source, flashcardWordsPerItem, flashcardMinCount, flashcardMaxCount)
		if n < flashcardMinCount || n > flashcardMaxCount {
			t.Fatalf("flashcard count %d out of [%d,%d] at %d words", n, flashcardMinCount, flashcardMaxCount, words)
		}
		n = targetCount(source, quizWordsPerItem, quizMinCount, quizMaxCount)
		if n < quizMinCount || n > quizMaxCount {
			t.Fatalf("quiz count %d out of [%d,%d] at %d words", n, quizMinCount, quizMaxCount, words)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 3000); got != "short" {
		t.Errorf("truncate below limit changed text: %q", got)
	}
	long := strings.Repeat("x", 5000)
	if got := truncate(long, 3000); len(got) != 3000 {
		t.Errorf("truncate = %d chars, want 3000", len(got))
	}
	// Truncation counts characters, not bytes.
	multibyte := strings.Repeat("é", 4000)
	if got := truncate(multibyte, 3000); len([]rune(got)) != 3000 {
		t.Errorf("truncate = %d runes, want 3000", len([]rune(got)))
	}
}

func TestUserPrompts_EmbedCountAndText(t *testing.T) {
	p := flashcardUserPrompt(7, "the krebs cycle")
	if !strings.Contains(p, "exactly 7 flashcards") {
		t.Errorf("flashcard prompt missing count: %q", p)
	}
	if !strings.Contains(p, "the krebs cycle") {
		t.Errorf("flashcard prompt missing source text")
	}
	if !strings.Contains(p, `"study_items"`) {
		t.Errorf("flashcard prompt missing response key")
	}

	q := quizUserPrompt(5, "photosynthesis")
	if !strings.Contains(q, "exactly 5 multiple-choice questions") {
		t.Errorf("quiz prompt missing count: %q", q)
	}
	if !strings.Contains(q, `"quiz_questions"`) {
		t.Errorf("quiz prompt missing response key")
	}
}

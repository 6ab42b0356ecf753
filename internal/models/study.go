package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudySet is a persisted container of source text plus metadata, owned by
// one user. Sets are immutable after creation; there is no update path.
type StudySet struct {
	ID         uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     string      `json:"user_id" gorm:"index;not null"`
	Title      string      `json:"title" gorm:"not null"`
	SourceText string      `json:"source_text" gorm:"not null"`
	CreatedAt  time.Time   `json:"created_at"`
	Items      []StudyItem `json:"study_items,omitempty" gorm:"foreignKey:StudySetID"`
}

func (s *StudySet) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// StudyItem is a persisted flashcard belonging to exactly one StudySet.
// Items are only ever created in bulk alongside their parent set.
type StudyItem struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	StudySetID uuid.UUID `json:"study_set_id" gorm:"type:uuid;index;not null"`
	UserID     string    `json:"user_id" gorm:"not null"`
	Question   string    `json:"question" gorm:"not null"`
	Answer     string    `json:"answer" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (i *StudyItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Flashcard is the generator's output before persistence.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuizQuestion is regenerated fresh on every quiz request and never stored.
// Options holds the correct answer plus 3 distractors in shuffled order.
type QuizQuestion struct {
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	Options       []string `json:"options"`
}

// StudySetSummary is the listing row for a user's study sets.
type StudySetSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

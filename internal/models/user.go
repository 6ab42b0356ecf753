package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User backs the local auth provider. When a remote auth provider is
// configured this table is unused.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Score  int    `json:"score"`
}

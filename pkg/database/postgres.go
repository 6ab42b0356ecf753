package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewPostgresDB(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureScoreSchema creates the score counter table and the named increment
// function the award endpoint calls. Idempotent; hosted deployments that
// manage this in migrations are unaffected.
func EnsureScoreSchema(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS user_scores (
			user_id TEXT PRIMARY KEY,
			score   BIGINT NOT NULL DEFAULT 0
		)`).Error; err != nil {
		return err
	}
	return db.Exec(`
		CREATE OR REPLACE FUNCTION increment_user_score(p_user_id TEXT, p_points BIGINT)
		RETURNS VOID AS $$
		BEGIN
			INSERT INTO user_scores (user_id, score)
			VALUES (p_user_id, p_points)
			ON CONFLICT (user_id)
			DO UPDATE SET score = user_scores.score + EXCLUDED.score;
		END;
		$$ LANGUAGE plpgsql`).Error
}

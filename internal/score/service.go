// Package score awards CR points through a named database increment
// procedure and mirrors totals into a Redis leaderboard.
package score

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"studyai-server/internal/models"
	"studyai-server/pkg/cache"
)

var ErrAward = errors.New("failed to award points")

type Service struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

func NewService(db *gorm.DB, cache *cache.RedisCache) *Service {
	return &Service{db: db, cache: cache}
}

// AwardPoints invokes the atomic increment function by name. No local
// arithmetic, no sign checks, no read-back. The Redis leaderboard mirror is
// best-effort and never fails the award.
func (s *Service) AwardPoints(ctx context.Context, userID string, points int) error {
	if err := s.db.WithContext(ctx).Exec("SELECT increment_user_score(?, ?)", userID, points).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrAward, err)
	}

	if err := s.cache.IncrScore(ctx, userID, points); err != nil {
		log.Printf("Leaderboard update failed for user %s: %v", userID, err)
	}
	return nil
}

func (s *Service) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return s.cache.Leaderboard(ctx)
}

package cache

import (
	"context"

	"github.com/go-redis/redis/v8"

	"studyai-server/internal/models"
)

const leaderboardKey = "leaderboard:cr"

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{client: client}
}

func (c *RedisCache) IncrScore(ctx context.Context, userID string, delta int) error {
	return c.client.ZIncrBy(ctx, leaderboardKey, float64(delta), userID).Err()
}

// Leaderboard returns all entries sorted by score, highest first.
func (c *RedisCache) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, len(results))
	for i, z := range results {
		userID, _ := z.Member.(string)
		entries[i] = models.LeaderboardEntry{
			UserID: userID,
			Score:  int(z.Score),
		}
	}
	return entries, nil
}

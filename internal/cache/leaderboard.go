// Package cache keeps hot read models in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zearn/internal/domain"
)

const leaderboardKey = "zearn:leaderboard"

// Client is the subset of *redis.Client the cache needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Leaderboard stores the ranked top accounts. A nil *Leaderboard is a valid,
// always-empty cache.
type Leaderboard struct {
	client Client
	ttl    time.Duration
}

func NewLeaderboard(client Client, ttl time.Duration) *Leaderboard {
	return &Leaderboard{client: client, ttl: ttl}
}

func NewRedisClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
}

// Get returns the cached board and whether it was present.
func (c *Leaderboard) Get(ctx context.Context) ([]domain.LeaderboardEntry, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, leaderboardKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("failed to read leaderboard cache", zap.Error(err))
		}
		return nil, false
	}

	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		zap.L().Warn("failed to decode leaderboard cache", zap.Error(err))
		return nil, false
	}
	return entries, true
}

func (c *Leaderboard) Set(ctx context.Context, entries []domain.LeaderboardEntry) {
	if c == nil {
		return
	}
	data, err := json.Marshal(entries)
	if err != nil {
		zap.L().Warn("failed to encode leaderboard", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, leaderboardKey, data, c.ttl).Err(); err != nil {
		zap.L().Warn("failed to write leaderboard cache", zap.Error(err))
	}
}

func (c *Leaderboard) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, leaderboardKey).Err(); err != nil {
		zap.L().Warn("failed to invalidate leaderboard cache", zap.Error(err))
	}
}

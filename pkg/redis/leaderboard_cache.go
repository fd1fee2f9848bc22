package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"rideathon.backend/internal/domain/entities"
)

const leaderboardKey = "scoreboard:leaderboard"

// LeaderboardCache keeps the ranked scoreboard in Redis with a short TTL.
// Readers tolerate a brief staleness window after a ledger write instead of
// blocking on recomputation.
type LeaderboardCache struct {
	ttl time.Duration
}

// NewLeaderboardCache creates a cache with the given TTL
func NewLeaderboardCache(ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{ttl: ttl}
}

// Get returns the cached leaderboard, or (nil, nil) on a miss
func (c *LeaderboardCache) Get(ctx context.Context) ([]entities.LeaderboardEntry, error) {
	raw, err := Get(ctx, leaderboardKey)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var entries []entities.LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Set stores the leaderboard
func (c *LeaderboardCache) Set(ctx context.Context, entries []entities.LeaderboardEntry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return Set(ctx, leaderboardKey, payload, c.ttl)
}

// Invalidate drops the cached leaderboard
func (c *LeaderboardCache) Invalidate(ctx context.Context) error {
	return Del(ctx, leaderboardKey)
}

package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Kennethenow1/Connect-Four-Game/internal/domain"
)

const recentGamesKey = "recent_games"

// RecentGames is a bounded cache of the latest finished games. Retention
// capping lives here, on the collaborator side: the engine never trims
// its own move log.
type RecentGames struct {
	client *redis.Client
	cap    int
	log    *zap.SugaredLogger
}

// InitRecentGames connects to Redis. An unreachable Redis is downgraded
// to a warning and a nil cache so the server can run Postgres-only.
func InitRecentGames(addr, password string, cap int, log *zap.SugaredLogger) *RecentGames {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Warnw("redis unavailable, recent-games cache disabled", "error", err)
		client.Close()
		return nil
	}

	log.Infow("redis connected", "addr", addr)
	return &RecentGames{client: client, cap: cap, log: log}
}

func (r *RecentGames) Close() error {
	return r.client.Close()
}

// SaveRecord pushes a finished game and trims the list to the cap.
func (r *RecentGames) SaveRecord(ctx context.Context, record *domain.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %v", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, recentGamesKey, data)
	pipe.LTrim(ctx, recentGamesKey, 0, int64(r.cap-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache record: %v", err)
	}
	return nil
}

// ListRecent returns up to limit of the latest finished games.
func (r *RecentGames) ListRecent(ctx context.Context, limit int) ([]domain.Record, error) {
	if limit <= 0 || limit > r.cap {
		limit = r.cap
	}

	raw, err := r.client.LRange(ctx, recentGamesKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read recent games: %v", err)
	}

	records := make([]domain.Record, 0, len(raw))
	for _, item := range raw {
		var record domain.Record
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			r.log.Warnw("skipping malformed cached record", "error", err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

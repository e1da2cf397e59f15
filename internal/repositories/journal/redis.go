package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
)

type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// RedisRepoConfig configures the Redis journal
type RedisRepoConfig struct {
	Client redis.UniversalClient

	// TTL expires a game's journal after its last append; zero keeps it
	TTL time.Duration
}

// NewRedisRepository creates a Redis-backed journal
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}
	return &redisRepo{client: cfg.Client, ttl: cfg.TTL}
}

// NewRedis creates a Redis journal that never expires
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func journalKey(gameID string) string {
	return fmt.Sprintf("journal:%s", gameID)
}

func (r *redisRepo) Append(ctx context.Context, gameID string, entries ...*Entry) error {
	if gameID == "" {
		return zerr.InvalidArgument("game ID is required")
	}

	values := make([]any, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		data, err := json.Marshal(e)
		if err != nil {
			return zerr.Wrapf(err, "failed to marshal journal entry %s", e.ID)
		}
		values = append(values, string(data))
	}
	if len(values) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	pipe.RPush(ctx, journalKey(gameID), values...)
	if r.ttl > 0 {
		pipe.Expire(ctx, journalKey(gameID), r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return zerr.Wrapf(err, "failed to append journal for game %s", gameID)
	}
	return nil
}

func (r *redisRepo) List(ctx context.Context, gameID string) ([]*Entry, error) {
	if gameID == "" {
		return nil, zerr.InvalidArgument("game ID is required")
	}

	raw, err := r.client.LRange(ctx, journalKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, zerr.Wrapf(err, "failed to read journal for game %s", gameID)
	}

	entries := make([]*Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, zerr.WrapWithCode(err, zerr.CodeInternal, fmt.Sprintf("corrupt journal entry in game %s", gameID))
		}
		entries = append(entries, &e)
	}
	return entries, nil
}

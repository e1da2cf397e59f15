package cooldowns

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
)

// redisRepo keeps one hash per caster: combo id to remaining turns
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed cooldown repository
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("redis client is required")
	}
	return &redisRepo{client: client}
}

func cooldownKey(casterID string) string {
	return fmt.Sprintf("cooldowns:%s", casterID)
}

func (r *redisRepo) Get(ctx context.Context, casterID, comboID string) (int, error) {
	if casterID == "" || comboID == "" {
		return 0, zerr.InvalidArgument("caster ID and combo ID are required")
	}

	turns, err := r.client.HGet(ctx, cooldownKey(casterID), comboID).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, zerr.Wrapf(err, "failed to get cooldown %s for %s", comboID, casterID)
	}
	return turns, nil
}

func (r *redisRepo) Set(ctx context.Context, casterID, comboID string, turns int) error {
	if casterID == "" || comboID == "" {
		return zerr.InvalidArgument("caster ID and combo ID are required")
	}

	var err error
	if turns <= 0 {
		err = r.client.HDel(ctx, cooldownKey(casterID), comboID).Err()
	} else {
		err = r.client.HSet(ctx, cooldownKey(casterID), comboID, turns).Err()
	}
	if err != nil {
		return zerr.Wrapf(err, "failed to set cooldown %s for %s", comboID, casterID)
	}
	return nil
}

func (r *redisRepo) List(ctx context.Context, casterID string) (map[string]int, error) {
	if casterID == "" {
		return nil, zerr.InvalidArgument("caster ID is required")
	}

	raw, err := r.client.HGetAll(ctx, cooldownKey(casterID)).Result()
	if err != nil {
		return nil, zerr.Wrapf(err, "failed to list cooldowns for %s", casterID)
	}

	out := make(map[string]int, len(raw))
	for comboID, value := range raw {
		turns, err := strconv.Atoi(value)
		if err != nil {
			return nil, zerr.WrapWithCode(err, zerr.CodeInternal, fmt.Sprintf("corrupt cooldown %s for %s", comboID, casterID))
		}
		out[comboID] = turns
	}
	return out, nil
}

func (r *redisRepo) Tick(ctx context.Context, casterIDs ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, casterID := range casterIDs {
		g.Go(func() error {
			return r.tickCaster(ctx, casterID)
		})
	}
	return g.Wait()
}

func (r *redisRepo) tickCaster(ctx context.Context, casterID string) error {
	current, err := r.List(ctx, casterID)
	if err != nil {
		return err
	}
	if len(current) == 0 {
		return nil
	}

	comboIDs := make([]string, 0, len(current))
	for comboID := range current {
		comboIDs = append(comboIDs, comboID)
	}
	slices.Sort(comboIDs)

	key := cooldownKey(casterID)
	pipe := r.client.Pipeline()
	for _, comboID := range comboIDs {
		if turns := current[comboID]; turns <= 1 {
			pipe.HDel(ctx, key, comboID)
		} else {
			pipe.HSet(ctx, key, comboID, turns-1)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return zerr.Wrapf(err, "failed to tick cooldowns for %s", casterID)
	}
	return nil
}

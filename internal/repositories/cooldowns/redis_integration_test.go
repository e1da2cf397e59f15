//go:build integration
// +build integration

package cooldowns_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/repositories/cooldowns"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	repo := cooldowns.NewRedis(client)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "p1", "golden_touch", 2))
	require.NoError(t, repo.Set(ctx, "p2", "wanderer", 1))

	require.NoError(t, repo.Tick(ctx, "p1", "p2"))

	turns, err := repo.Get(ctx, "p1", "golden_touch")
	require.NoError(t, err)
	assert.Equal(t, 1, turns)

	listed, err := repo.List(ctx, "p2")
	require.NoError(t, err)
	assert.Empty(t, listed)

	require.NoError(t, repo.Tick(ctx, "p1"))
	turns, err = repo.Get(ctx, "p1", "golden_touch")
	require.NoError(t, err)
	assert.Zero(t, turns)
}

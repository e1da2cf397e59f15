package journal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	require.NoError(t, repo.Append(ctx, "g1", &Entry{ID: "a", Value: 1}, nil, &Entry{ID: "b", Value: 2}))
	require.NoError(t, repo.Append(ctx, "g2", &Entry{ID: "c"}))

	entries, err := repo.List(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)

	// returned entries are copies
	entries[0].Value = 99
	again, err := repo.List(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, again[0].Value)

	empty, err := repo.List(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, empty)

	assert.Error(t, repo.Append(ctx, "", &Entry{ID: "x"}))
}

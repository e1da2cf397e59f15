package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
)

func TestNew(t *testing.T) {
	t.Run("defaults to info", func(t *testing.T) {
		logger, err := New(nil)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zap.InfoLevel))
		assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("development debug", func(t *testing.T) {
		logger, err := New(&Config{Level: "debug", Development: true})
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := New(&Config{Level: "chatty"})
		require.Error(t, err)
		assert.Equal(t, zerr.CodeInvalidArgument, zerr.GetCode(err))
	})
}

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	t.Run("development defaults to debug", func(t *testing.T) {
		logger, err := NewLogger(Config{AppEnv: "development"})
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("production defaults to info", func(t *testing.T) {
		logger, err := NewLogger(Config{AppEnv: "production"})
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zap.DebugLevel))
		assert.True(t, logger.Core().Enabled(zap.InfoLevel))
	})

	t.Run("level override", func(t *testing.T) {
		logger, err := NewLogger(Config{AppEnv: "production", LogLevel: "warn"})
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := NewLogger(Config{LogLevel: "loud"})
		assert.ErrorContains(t, err, "LOG_LEVEL")
	})
}

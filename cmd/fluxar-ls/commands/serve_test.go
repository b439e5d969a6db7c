package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/fluxar-ls/am"
	"github.com/teranos/fluxar-ls/logger"
	"go.uber.org/zap/zapcore"
)

func withLogLevel(t *testing.T, lvl zapcore.Level) {
	t.Helper()
	previous := logger.Level()
	logger.SetLevel(lvl)
	t.Cleanup(func() { logger.SetLevel(previous) })
}

func configWithLevel(level string) *am.Config {
	return &am.Config{Log: am.LogConfig{Level: level}}
}

func TestReloadLogLevel(t *testing.T) {
	t.Run("config level applies without -v", func(t *testing.T) {
		withLogLevel(t, zapcore.InfoLevel)

		require.NoError(t, reloadLogLevel(logger.VerbosityUser)(configWithLevel("debug")))
		assert.Equal(t, zapcore.DebugLevel, logger.Level())

		require.NoError(t, reloadLogLevel(logger.VerbosityUser)(configWithLevel("warn")))
		assert.Equal(t, zapcore.WarnLevel, logger.Level())
	})

	t.Run("explicit -v wins over the file", func(t *testing.T) {
		withLogLevel(t, zapcore.InfoLevel)

		require.NoError(t, reloadLogLevel(logger.VerbosityInfo)(configWithLevel("error")))
		assert.Equal(t, zapcore.InfoLevel, logger.Level())
	})

	t.Run("unknown level is an error and keeps the current level", func(t *testing.T) {
		withLogLevel(t, zapcore.InfoLevel)

		err := reloadLogLevel(logger.VerbosityUser)(configWithLevel("loud"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `log.level "loud"`)
		assert.Equal(t, zapcore.InfoLevel, logger.Level())
	})
}

package am

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWatcher_ReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"info\"\n")
	SetConfigFile(path)
	t.Cleanup(func() { SetConfigFile("") })

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	cw.debouncePeriod = 20 * time.Millisecond

	reloaded := make(chan *Config, 4)
	cw.OnReload(func(cfg *Config) error {
		reloaded <- cfg
		return nil
	})
	cw.Start()
	t.Cleanup(func() { _ = cw.Stop() })

	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "debug", cfg.Log.Level)
	case <-time.After(5 * time.Second):
		t.Fatal("config watcher did not reload")
	}
}

func TestConfigWatcher_InvalidConfigSkipsCallbacks(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"info\"\n")
	SetConfigFile(path)
	t.Cleanup(func() { SetConfigFile("") })

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cw.Stop() })

	called := false
	cw.OnReload(func(cfg *Config) error {
		called = true
		return nil
	})

	require.NoError(t, os.WriteFile(path, []byte("[server]\nmax_documents = 0\n"), 0o644))

	assert.Error(t, cw.reload())
	assert.False(t, called)
}

func TestNewConfigWatcher_MissingFile(t *testing.T) {
	_, err := NewConfigWatcher("/nonexistent/am.toml")
	assert.Error(t, err)
}

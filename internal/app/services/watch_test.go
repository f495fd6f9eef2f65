package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWatchSignalsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: nord\n"), 0o600))

	w := NewConfigWatchService(path, t.Logf)
	started, err := w.Start()
	require.NoError(t, err)
	require.True(t, started)
	t.Cleanup(w.Stop)

	ch := w.NextEvent()
	require.NotNil(t, ch)
	assert.Nil(t, w.NextEvent(), "only one waiter at a time")

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.yaml"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("theme: dracula\n"), 0o600))

	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatal("no event for config write")
	}
	w.ResetWaiting()
	assert.NotNil(t, w.NextEvent())
}

func TestConfigWatchWithoutPath(t *testing.T) {
	w := NewConfigWatchService("", nil)
	started, err := w.Start()
	require.NoError(t, err)
	assert.False(t, started)
	assert.Nil(t, w.NextEvent())
	w.Stop()
}

func TestShouldReloadDebounces(t *testing.T) {
	w := NewConfigWatchService("/x/config.yaml", nil)
	now := time.Unix(100, 0)

	assert.True(t, w.ShouldReload(now))
	assert.False(t, w.ShouldReload(now.Add(ConfigWatchDebounce/2)))
	assert.True(t, w.ShouldReload(now.Add(ConfigWatchDebounce)))
}

func TestIsConfigFile(t *testing.T) {
	w := NewConfigWatchService("/x/config.yaml", nil)
	assert.True(t, w.IsConfigFile("/x/./config.yaml"))
	assert.False(t, w.IsConfigFile("/x/config.yml"))
	assert.False(t, w.IsConfigFile(""))
}

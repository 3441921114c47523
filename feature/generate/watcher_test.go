package generate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestWatcher_Debounce collapses event bursts on the same path.
func TestWatcher_Debounce(t *testing.T) {
	w, err := NewWatcher(zap.NewNop(), func() error { return nil })
	require.NoError(t, err)
	defer w.watcher.Close()

	assert.False(t, w.debounced("a.json"), "first event fires")
	assert.True(t, w.debounced("a.json"), "burst is debounced")
	assert.False(t, w.debounced("b.json"), "other paths are independent")

	w.debounceMap["a.json"] = time.Now().Add(-time.Second)
	assert.False(t, w.debounced("a.json"), "events after the window fire again")
}

// TestWatcher_StopTerminatesRun verifies the event loop shuts down cleanly.
func TestWatcher_StopTerminatesRun(t *testing.T) {
	w, err := NewWatcher(zap.NewNop(), func() error { return nil })
	require.NoError(t, err)

	go w.Run()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

// TestWatcher_AddMissingPath skips paths that do not exist yet.
func TestWatcher_AddMissingPath(t *testing.T) {
	w, err := NewWatcher(zap.NewNop(), func() error { return nil })
	require.NoError(t, err)
	defer w.watcher.Close()

	w.Add(filepath.Join(t.TempDir(), "nope"))
	assert.Empty(t, w.watcher.WatchList())

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	w.Add(dir)
	assert.Len(t, w.watcher.WatchList(), 1)
}

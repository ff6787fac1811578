package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsChange(t *testing.T) {
	dir := t.TempDir()

	w, err := New([]string{dir})
	require.NoError(t, err)
	defer w.Close()

	// Give the watcher a moment to register on slower platforms.
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(dir, "newfile")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

	select {
	case got := <-w.Events():
		assert.Contains(t, got, "newfile")
	case <-time.After(3 * time.Second):
		t.Fatal("no event received for file creation")
	}
}

func TestWatcherSkipsMissingRoots(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "not-there")

	w, err := New([]string{missing})
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := New([]string{t.TempDir()})
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

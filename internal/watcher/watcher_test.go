package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldIgnore(t *testing.T) {
	tests := []struct {
		path   string
		ignore bool
	}{
		{"/repo/.git/index.lock", true},
		{"/repo/.git/HEAD.lock", true},
		{"/repo/.main.go.swp", true},
		{"/repo/.main.go.swo", true},
		{"/repo/main.go~", true},
		{"/repo/.#main.go", true},
		{"/repo/.git/COMMIT_EDITMSG", true},
		{"/repo/.git/gc.log", true},
		{"/repo/.git/fsmonitor--daemon.ipc", true},
		{"/repo/main.go", false},
		{"/repo/.git/HEAD", false},
		{"/repo/.git/index", false},
		{"/repo/internal/app/app.go", false},
		{"/repo/locker.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.ignore, shouldIgnore(tt.path))
		})
	}
}

func TestSignalCoalescesIntoSingleDrain(t *testing.T) {
	w := &Watcher{events: make(chan struct{}, 1)}

	w.signal()
	w.signal()
	w.signal()

	assert.True(t, w.Drain())
	assert.False(t, w.Drain(), "burst must coalesce into one signal")
}

func TestDrainOnEmptyWatcherDoesNotBlock(t *testing.T) {
	w := &Watcher{events: make(chan struct{}, 1)}
	assert.False(t, w.Drain())
}

func TestWatcherSeesFileWrites(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir, "")
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))

	assert.Eventually(t, w.Drain, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherIgnoresLockFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir, "")
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.lock"), []byte("x"), 0o644))

	time.Sleep(200 * time.Millisecond)
	assert.False(t, w.Drain())
}

func TestWatcherPicksUpNewDirectories(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir, "")
	require.NoError(t, err)
	defer w.Stop()

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	// Drain the create event, then verify writes below the new directory
	// are seen too.
	assert.Eventually(t, w.Drain, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.txt"), []byte("y"), 0o644))
	assert.Eventually(t, w.Drain, 2*time.Second, 10*time.Millisecond)
}

func TestStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir, "")
	require.NoError(t, err)

	w.Stop()
	w.Stop()
}

// pkg/watcher/filewatch_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Real filesystem, fsnotify
// PURPOSE: Test file change notifications

package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arthur-debert/clipfix/pkg/clipboard"
	"github.com/arthur-debert/clipfix/pkg/errors"
	"github.com/arthur-debert/clipfix/pkg/testutil"
	"github.com/arthur-debert/clipfix/pkg/watcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "clip.txt", "")
	clip := clipboard.NewFile(path)

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watcher.NewFileWatcher(path).Run(ctx, watcher.HandlerFunc(func() {
			calls.Add(1)
		}))
	}()

	// The watcher registers asynchronously, so keep writing until it sees one.
	require.Eventually(t, func() bool {
		assert.NoError(t, clip.Write("https://x.com/someuser/status/1"))
		return calls.Load() > 0
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("file watcher did not stop")
	}
}

func TestFileWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "clip.txt", "")

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = watcher.NewFileWatcher(path).Run(ctx, watcher.HandlerFunc(func() {
			calls.Add(1)
		}))
	}()

	require.Eventually(t, func() bool {
		assert.NoError(t, os.WriteFile(path, []byte("ping"), 0644))
		return calls.Load() > 0
	}, 2*time.Second, 20*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	before := calls.Load()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("noise"), 0644))
	}
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, before, calls.Load())
}

func TestFileWatcher_MissingDirectory(t *testing.T) {
	w := watcher.NewFileWatcher(filepath.Join(t.TempDir(), "missing", "clip.txt"))

	err := w.Run(context.Background(), watcher.HandlerFunc(func() {}))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWatcherSetup))
}

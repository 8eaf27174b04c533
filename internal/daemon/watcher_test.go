package daemon

import (
	"bbsync/internal/model"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, w *Watcher, kind model.EventKind, path string) {
	t.Helper()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case event, ok := <-w.Events():
			require.True(t, ok, "event channel closed")
			if event.Kind == kind && event.Path() == path {
				return
			}
		case <-timeout:
			t.Fatalf("no %s event for %s", kind, path)
		}
	}
}

func TestWatcher_Modify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hack.js")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	w, err := NewWatcher(10)
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.Watch(dir))

	require.NoError(t, os.WriteFile(path, []byte("b"), 0644))
	waitFor(t, w, model.KindModify, path)
}

func TestWatcher_NewDirectoryIsWatched(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(10)
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.Watch(dir))

	sub := filepath.Join(dir, "lib")
	require.NoError(t, os.Mkdir(sub, 0755))
	waitFor(t, w, model.KindCreate, sub)

	path := filepath.Join(sub, "util.ts")
	require.NoError(t, os.WriteFile(path, []byte("export {}"), 0644))
	waitFor(t, w, model.KindModify, path)
}

func TestWatcher_MissingDir(t *testing.T) {
	w, err := NewWatcher(1)
	require.NoError(t, err)
	defer w.Stop()

	assert.Error(t, w.Watch(filepath.Join(t.TempDir(), "missing")))
}

func TestWatcher_StopClosesEvents(t *testing.T) {
	w, err := NewWatcher(1)
	require.NoError(t, err)
	require.NoError(t, w.Watch(t.TempDir()))

	w.Stop()
	w.Stop()

	select {
	case _, ok := <-w.Events():
		for ok {
			_, ok = <-w.Events()
		}
	case <-time.After(time.Second):
		t.Fatal("events channel not closed")
	}
}

package sapling

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replaceFile writes data next to path and renames it into place so the
// watcher never sees a partial file.
func replaceFile(t *testing.T, path, data string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(data), 0o644))
	require.NoError(t, os.Rename(tmp, path))
}

func TestSettingsWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, DefaultSettings().Save(path))

	w, err := WatchSettings(path)
	require.NoError(t, err)
	defer w.Close()

	replaceFile(t, path, "grid_size: 32\n")

	select {
	case s := <-w.Updates():
		assert.Equal(t, 32.0, s.GridSize)
		assert.Equal(t, 12.0, s.SelectionBox)
	case err := <-w.Errors():
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no settings update")
	}
}

func TestSettingsWatcherReadsFinalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, DefaultSettings().Save(path))

	w, err := WatchSettings(path)
	require.NoError(t, err)
	defer w.Close()

	// Truncate then write in place, the way many editors save.
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	require.NoError(t, os.WriteFile(path, []byte("grid_size: 24\n"), 0o644))

	select {
	case s := <-w.Updates():
		assert.Equal(t, 24.0, s.GridSize, "reload should see the last write")
	case err := <-w.Errors():
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no settings update")
	}

	select {
	case s := <-w.Updates():
		t.Errorf("burst of writes reloaded twice: %+v", s)
	case <-time.After(3 * watchDebounce):
	}
}

func TestSettingsWatcherReportsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, DefaultSettings().Save(path))

	w, err := WatchSettings(path)
	require.NoError(t, err)
	defer w.Close()

	replaceFile(t, path, "bindings:\n  jump: [space]\n")

	select {
	case err := <-w.Errors():
		assert.Error(t, err)
	case s := <-w.Updates():
		t.Fatalf("invalid settings delivered: %+v", s)
	case <-time.After(5 * time.Second):
		t.Fatal("no error reported")
	}
}

func TestSettingsWatcherClose(t *testing.T) {
	w, err := WatchSettings(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	_, ok := <-w.Updates()
	assert.False(t, ok, "Updates should be closed")
	_, ok = <-w.Errors()
	assert.False(t, ok, "Errors should be closed")

	// Closing twice is harmless.
	assert.NoError(t, w.Close())
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root string, rel string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
}

func TestLocalStore_ListPrefix(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root)

	writeFile(t, root, "projects/p1/cover.png")
	writeFile(t, root, "projects/p1/shots/sh010.png")
	writeFile(t, root, "projects/p2/cover.png")

	paths, err := store.ListPrefix("projects/p1")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		"projects/p1/cover.png",
		"projects/p1/shots/sh010.png",
	}, paths)
}

func TestLocalStore_ListPrefix_Missing(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	paths, err := store.ListPrefix("projects/absent")
	require.NoError(t, err)
	require.Empty(t, paths)
}

func TestLocalStore_RejectsEscapingPaths(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "blobs")
	require.NoError(t, os.MkdirAll(root, 0o755))
	store := NewLocalStore(root)

	writeFile(t, parent, "secret.txt")
	writeFile(t, root, "projects/p1/cover.png")

	for _, prefix := range []string{
		"projects/../..",
		"projects/..",
		"..",
		"../blobs",
		"/etc",
	} {
		paths, err := store.ListPrefix(prefix)
		require.ErrorIs(t, err, ErrUnsafePath, "prefix %q", prefix)
		require.Empty(t, paths)
	}

	err := store.Remove([]string{"../secret.txt"})
	require.ErrorIs(t, err, ErrUnsafePath)
	_, statErr := os.Stat(filepath.Join(parent, "secret.txt"))
	require.NoError(t, statErr, "file outside the root stays")
	_, statErr = os.Stat(filepath.Join(root, "projects", "p1", "cover.png"))
	require.NoError(t, statErr)
}

func TestLocalStore_Remove(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root)

	writeFile(t, root, "projects/p1/cover.png")
	writeFile(t, root, "projects/p1/extra.png")

	err := store.Remove([]string{
		"projects/p1/cover.png",
		"projects/p1/already-gone.png", // tolerated
	})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(root, "projects", "p1", "cover.png"))
	require.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Join(root, "projects", "p1", "extra.png"))
	require.NoError(t, statErr, "unlisted files stay")
}

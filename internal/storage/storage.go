package storage

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrUnsafePath is returned for a path that would resolve outside the root.
var ErrUnsafePath = errors.New("storage path escapes the root")

// Store is the blob-storage boundary: list files under a prefix and remove
// them by path. Paths use forward slashes regardless of platform.
type Store interface {
	ListPrefix(prefix string) ([]string, error)
	Remove(paths []string) error
}

// LocalStore keeps blobs on the local filesystem under a root directory.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// resolve maps a storage path onto the filesystem. Paths that would land on
// the root itself or outside it are rejected.
func (s *LocalStore) resolve(p string) (string, error) {
	clean := path.Clean(p)
	if clean == "." || clean == ".." || path.IsAbs(clean) || strings.HasPrefix(clean, "../") {
		return "", ErrUnsafePath
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

// ListPrefix returns the storage paths of all files under prefix. A missing
// prefix yields an empty list, not an error.
func (s *LocalStore) ListPrefix(prefix string) ([]string, error) {
	dir, err := s.resolve(prefix)
	if err != nil {
		return nil, err
	}

	var paths []string
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// Remove deletes the given storage paths. It keeps going after individual
// failures and returns the first error encountered.
func (s *LocalStore) Remove(paths []string) error {
	var firstErr error
	for _, p := range paths {
		full, err := s.resolve(p)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

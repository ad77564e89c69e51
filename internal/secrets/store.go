package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	paerrors "github.com/Sjlver/pa/internal/errors"
)

// Ext is the file suffix of encrypted entries.
const Ext = ".age"

// Store maps validated entry names to encrypted files under a root
// directory. The directory tree is the only index: an entry exists
// exactly when its file does.
type Store struct {
	Root string
}

// EntryPath returns the absolute path of the encrypted file for name.
// The name must already be validated by NormalizeName.
func (s Store) EntryPath(name string) string {
	return filepath.Join(s.Root, filepath.FromSlash(name)+Ext)
}

// Exists reports whether an entry with this name is stored.
func (s Store) Exists(name string) bool {
	info, err := os.Stat(s.EntryPath(name))
	return err == nil && !info.IsDir()
}

// List returns the names of all stored entries in sorted order. The
// result is recomputed on every call; nothing is cached.
func (s Store) List() ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(s.Root), "**/*"+Ext)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, strings.TrimSuffix(match, Ext))
	}
	sort.Strings(names)

	return names, nil
}

// EnsureCategory creates the intermediate category directories for an
// entry's path. Idempotent.
func (s Store) EnsureCategory(name string) error {
	dir := filepath.Dir(s.EntryPath(name))
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: %v", paerrors.ErrDirectoryCreateFailed, err)
	}
	return nil
}

// Remove deletes the entry's encrypted file, then prunes now-empty
// category directories up to (but not including) the store root.
// Failure to prune is non-fatal: a leftover empty directory is cosmetic.
func (s Store) Remove(name string) error {
	path := s.EntryPath(name)
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing entry: %w", err)
	}

	root := filepath.Clean(s.Root)
	for dir := filepath.Dir(path); dir != root; dir = filepath.Dir(dir) {
		// os.Remove refuses to delete non-empty directories, which is
		// exactly the stop condition.
		if err := os.Remove(dir); err != nil {
			break
		}
	}

	return nil
}

// Package fs resolves and reads markdown documents from a base directory
// and discovers them by glob pattern.
package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/mdnb"
)

// Interface compliance check.
var _ mdnb.DocumentReader = (*Store)(nil)

// Store reads documents relative to a base directory.
type Store struct {
	Dir string
}

// ReadDocument resolves name against the store directory and reads its text.
// A missing file is reported as mdnb.ErrNotFound so the batch driver can
// skip it; any other failure is returned as-is.
func (s *Store) ReadDocument(name string) (mdnb.Document, error) {
	path := filepath.Join(s.Dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return mdnb.Document{}, fmt.Errorf("%s: %w", path, mdnb.ErrNotFound)
	}
	if err != nil {
		return mdnb.Document{}, fmt.Errorf("read document: %w", err)
	}
	return mdnb.Document{Name: name, Path: path, Text: string(data)}, nil
}

// Discover returns the file names under the store directory matching a
// doublestar glob pattern, sorted for a stable batch order. Directories are
// excluded.
func (s *Store) Discover(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, mdnb.ErrValidation)
	}
	fsys := os.DirFS(s.Dir)
	var names []string
	err := doublestar.GlobWalk(fsys, pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		names = append(names, filepath.FromSlash(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(names)
	return names, nil
}

// Copyright © 2021-2025 The Gomon Project.

package journal

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type (
	// marker manages the resume marker file and its pending copy.
	marker struct {
		path    string
		pending string
	}
)

// newMarker validates that the marker's directory exists and is writable.
func newMarker(path string) (*marker, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir, name := filepath.Split(path)
	if name == "" {
		return nil, fmt.Errorf("%w: marker %q is not a file name", ErrUnavailable, path)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: marker %q is a directory", ErrUnavailable, path)
	}
	if err := writable(dir); err != nil {
		return nil, fmt.Errorf("%w: marker directory %s: %w", ErrUnavailable, dir, err)
	}
	return &marker{
		path:    path,
		pending: filepath.Join(dir, "."+name+".pending"),
	}, nil
}

// load reads the marker. An absent marker reads as empty.
func (m *marker) load() ([]byte, error) {
	cursor, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(cursor)) == 0 {
		return nil, nil
	}
	return cursor, nil
}

// stage copies the cursor to the pending marker for the reader to resume from and update.
func (m *marker) stage(cursor []byte) error {
	return os.WriteFile(m.pending, cursor, 0o600)
}

// reset removes the pending marker.
func (m *marker) reset() error {
	if err := os.Remove(m.pending); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// commit replaces the marker with the pending marker. If the reader recorded no position the
// marker is reset to empty, discarding any content the reader rejected.
func (m *marker) commit() error {
	err := os.Rename(m.pending, m.path)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	f, err := os.OpenFile(m.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	return f.Close()
}

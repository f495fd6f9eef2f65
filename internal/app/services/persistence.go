// Package services holds the side-effecting helpers of the app: saved-state
// files and config file watching.
package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chmouel/floatbar/internal/searchbar/savedstate"
)

const (
	defaultFilePerms = 0o600
	defaultDirPerms  = 0o750
)

// LoadState reads a saved-state blob. A missing file is not an error and
// yields a nil blob.
func LoadState(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	// #nosec G304 -- path comes from the user's config or flags
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state %s: %w", path, err)
	}
	return data, nil
}

// LoadRecord reads and decodes the saved state at path. ok is false when
// there is no saved state.
func LoadRecord(path string) (rec savedstate.Record, ok bool, err error) {
	data, err := LoadState(path)
	if err != nil || data == nil {
		return savedstate.Record{}, false, err
	}
	rec, err = savedstate.Decode(data)
	if err != nil {
		return savedstate.Record{}, false, fmt.Errorf("decode state %s: %w", path, err)
	}
	return rec, true, nil
}

// SaveState writes blob to path, replacing any previous state atomically.
func SaveState(path string, blob []byte) error {
	if path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, defaultDirPerms); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".state-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(blob); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(defaultFilePerms); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ClearState removes the state file. Removing a missing file succeeds.
func ClearState(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

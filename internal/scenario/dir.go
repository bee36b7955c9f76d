package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/fanova-csv/internal/utils"
	"github.com/google/uuid"
)

const dirPrefix = "fanova-scenario-"

// Dir is a scenario directory. Directories created by Acquire are owned and
// removed by Release; pinned directories are left in place.
type Dir struct {
	path     string
	owned    bool
	released bool
}

// Acquire creates a fresh, uniquely named scenario directory under base.
// An empty base means os.TempDir().
func Acquire(base string) (*Dir, error) {
	if base == "" {
		base = os.TempDir()
	}
	if err := utils.EnsureDir(base); err != nil {
		return nil, fmt.Errorf("ensure scenario base dir: %w", err)
	}
	path := filepath.Join(base, dirPrefix+uuid.NewString())
	if err := os.Mkdir(path, 0o755); err != nil {
		return nil, fmt.Errorf("create scenario dir: %w", err)
	}
	return &Dir{path: path, owned: true}, nil
}

// Pin wraps a caller-chosen directory, creating it if absent. Release never
// removes a pinned directory.
func Pin(path string) (*Dir, error) {
	if path == "" {
		return nil, errors.New("scenario dir path is empty")
	}
	if err := utils.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create scenario dir: %w", err)
	}
	return &Dir{path: path}, nil
}

// Path returns the on-disk location of the directory.
func (d *Dir) Path() string { return d.path }

// Owned reports whether Release will remove the directory.
func (d *Dir) Owned() bool { return d.owned && !d.released }

// Detach hands ownership to the caller: Release becomes a no-op.
func (d *Dir) Detach() string {
	d.owned = false
	return d.path
}

// Release removes an owned directory and everything in it. Calling it more
// than once is harmless.
func (d *Dir) Release() error {
	if d == nil || d.released {
		return nil
	}
	d.released = true
	if !d.owned {
		return nil
	}
	if err := os.RemoveAll(d.path); err != nil {
		return fmt.Errorf("remove scenario dir: %w", err)
	}
	return nil
}

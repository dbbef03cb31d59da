package binary

import (
	"fmt"
	"os"

	"github.com/monorka/tabletrace-install/internal/platform"
)

// ExecutableMode is applied to installed artifacts on non-Windows platforms.
const ExecutableMode os.FileMode = 0755

// Finalizer makes a downloaded artifact usable.
type Finalizer struct {
	chmod func(name string, mode os.FileMode) error
}

// NewFinalizer creates a finalizer that uses os.Chmod.
func NewFinalizer() *Finalizer {
	return &Finalizer{chmod: os.Chmod}
}

// Finalize checks the artifact at path and returns its size as read from disk.
//
// A missing or empty file is an IOError; an empty file is removed. On
// non-Windows keys the executable bits are set once; a failure there is a
// PermissionError and the file is kept.
func (f *Finalizer) Finalize(path string, key platform.Key) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, IOError.Wrap(fmt.Errorf("stat artifact: %w", err))
	}
	if !info.Mode().IsRegular() {
		return 0, IOError.New("artifact %s is not a regular file", path)
	}
	if info.Size() == 0 {
		_ = os.Remove(path)
		return 0, IOError.New("artifact %s is empty", path)
	}

	if !key.IsWindows() {
		if err := f.chmod(path, ExecutableMode); err != nil {
			return info.Size(), PermissionError.Wrap(fmt.Errorf("set executable: %w", err))
		}
	}

	return info.Size(), nil
}

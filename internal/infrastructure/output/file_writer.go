package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/lite-lake/infra-dnsfilters/internal/constants"
	"github.com/lite-lake/infra-dnsfilters/internal/domain"
)

// FileWriter replaces a file atomically while holding an advisory lock, so
// that parallel playbook forks rendering the same target do not interleave.
type FileWriter struct {
	path  string
	flock *flock.Flock
}

func NewFileWriter(path string) *FileWriter {
	return &FileWriter{
		path:  path,
		flock: flock.New(path + constants.LockFileSuffix),
	}
}

func (w *FileWriter) Write(ctx context.Context, data []byte) error {
	locked, err := w.flock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquiring lock for %s: %w: %w", w.path, domain.ErrOutputWriteFailed, err)
	}
	if !locked {
		return fmt.Errorf("acquiring lock for %s: %w", w.path, domain.ErrOutputWriteFailed)
	}
	defer w.flock.Unlock()

	tmpPath := filepath.Join(filepath.Dir(w.path), fmt.Sprintf(constants.TempFilePattern, filepath.Base(w.path)))
	if err := os.WriteFile(tmpPath, data, constants.FilePermissionOwnerRW); err != nil {
		return fmt.Errorf("writing temp file %s: %w: %w", tmpPath, domain.ErrOutputWriteFailed, err)
	}

	if err := os.Rename(tmpPath, w.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s to %s: %w: %w", tmpPath, w.path, domain.ErrOutputWriteFailed, err)
	}

	return nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// ImageStore persists the serialized database image in one well-known
// durable slot. It is owned exclusively by the embedded store; repositories
// never touch the image directly.
type ImageStore interface {
	// Flush writes the image to the durable slot. A failed flush is never
	// silently swallowed: quota and disk-space failures come back wrapped
	// around [ErrQuotaExceeded] so the caller can warn the user while the
	// in-memory state keeps the mutation.
	Flush(ctx context.Context, image []byte) error

	// Load reads the durable slot. The second return value is false when
	// no prior image exists (first run).
	Load(ctx context.Context) ([]byte, bool, error)
}

type fileImageStore struct {
	path       string
	quotaBytes int64
}

// NewFileImageStore returns an ImageStore backed by a single file at path.
// quotaBytes caps the image size; zero means no cap (filesystem limits
// still apply and are reported as quota failures).
func NewFileImageStore(path string, quotaBytes int64) ImageStore {
	return &fileImageStore{path: path, quotaBytes: quotaBytes}
}

func (f *fileImageStore) Flush(ctx context.Context, image []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("flush image: %w", err)
	}

	if f.quotaBytes > 0 && int64(len(image)) > f.quotaBytes {
		return fmt.Errorf("flush image of %d bytes over %d byte quota: %w",
			len(image), f.quotaBytes, ErrQuotaExceeded)
	}

	dir := filepath.Dir(f.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create image dir: %w", err)
		}
	}

	// Write to a sibling temp file and rename so the slot always holds a
	// complete image, even across a crash mid-write.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, image, 0o600); err != nil {
		os.Remove(tmp)
		if errors.Is(err, syscall.ENOSPC) {
			return fmt.Errorf("write image: %v: %w", err, ErrQuotaExceeded)
		}
		return fmt.Errorf("write image: %w", err)
	}

	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("commit image: %w", err)
	}

	return nil
}

func (f *fileImageStore) Load(ctx context.Context) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, fmt.Errorf("load image: %w", err)
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read image slot: %w", err)
	}

	return data, true, nil
}

package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type fileGateway struct {
	dir string
	mu  sync.Mutex
}

// NewFile creates a Gateway storing one file per blob under dir.
// The directory is created when missing.
func NewFile(dir string) (Gateway, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("blobstore: resolve data dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("blobstore: create data dir: %w", err)
	}
	return &fileGateway{dir: abs}, nil
}

func (g *fileGateway) Load(ctx context.Context, name string) ([]byte, error) {
	path, err := g.path(name)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("blobstore: read %s: %w", filepath.Base(path), err)
	}
	return data, nil
}

func (g *fileGateway) Save(ctx context.Context, name string, data []byte) error {
	path, err := g.path(name)
	if err != nil {
		return err
	}
	if err := checkSize(data); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Write to a sibling temp file first so readers never see a partial blob.
	tmp, err := os.CreateTemp(g.dir, "blob-*.tmp")
	if err != nil {
		return fmt.Errorf("blobstore: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("blobstore: write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("blobstore: close %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("blobstore: replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (g *fileGateway) Close() error {
	return nil
}

// path resolves name inside the data directory and rejects anything that escapes it.
func (g *fileGateway) path(name string) (string, error) {
	base, err := CleanName(name)
	if err != nil {
		return "", err
	}

	full := filepath.Join(g.dir, base)
	if !strings.HasPrefix(full, g.dir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: path traversal detected", ErrInvalidName)
	}
	return full, nil
}

// Package filestore implements ports.FileStore on a local directory.
// Every path is resolved inside the directory through os.Root, so symlinks
// and ".." cannot reach files outside it.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jsamuelsen/exercises-service/internal/domain"
	"github.com/jsamuelsen/exercises-service/internal/ports"
)

// CheckName identifies the store in readiness responses.
const CheckName = "filestore"

var (
	_ ports.FileStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store serves files from a root directory.
type Store struct {
	root   *os.Root
	dir    string
	logger *slog.Logger
}

// New opens dir as the store root.
func New(dir string, logger *slog.Logger) (*Store, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("opening file store root %s: %w", dir, err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Store{root: root, dir: dir, logger: logger}, nil
}

// Open opens path for reading. path is relative to the store root.
func (s *Store) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := filepath.FromSlash(path)
	if !filepath.IsLocal(name) {
		return nil, domain.NewValidationErrorWithValue("path", "must be relative to the file store root", path)
	}

	f, err := s.root.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewNotFoundError("file", path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, domain.NewValidationErrorWithValue("path", "is a directory", path)
	}

	s.logger.DebugContext(ctx, "file opened", slog.String("path", path), slog.Int64("bytes", info.Size()))

	return f, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return CheckName
}

// Check reports whether the root directory is still reachable.
func (s *Store) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("file store root %s: %w", s.dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("file store root %s is not a directory", s.dir)
	}
	return nil
}

// Close releases the root directory handle.
func (s *Store) Close() error {
	return s.root.Close()
}

package filestore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/exercises-service/internal/domain"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "notes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes", "todo.txt"), []byte("a\n# b\n\nc\n"), 0o600))

	s, err := New(dir, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, dir
}

func TestNew_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	s, _ := newStore(t)

	rc, err := s.Open(context.Background(), "notes/todo.txt")
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "a\n# b\n\nc\n", string(content))
}

func TestOpen_Errors(t *testing.T) {
	s, _ := newStore(t)

	tests := []struct {
		name     string
		path     string
		errCheck func(error) bool
	}{
		{"missing file", "notes/missing.txt", domain.IsNotFound},
		{"parent escape", "../etc/passwd", domain.IsValidation},
		{"absolute path", "/etc/passwd", domain.IsValidation},
		{"directory", "notes", domain.IsValidation},
		{"empty path", "", domain.IsValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, err := s.Open(context.Background(), tt.path)
			require.Error(t, err)
			assert.Nil(t, rc)
			assert.True(t, tt.errCheck(err), "unexpected error: %v", err)
		})
	}
}

func TestOpen_SymlinkEscape(t *testing.T) {
	s, dir := newStore(t)

	outside := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o600))
	if err := os.Symlink(outside, filepath.Join(dir, "link.txt")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	_, err := s.Open(context.Background(), "link.txt")
	assert.Error(t, err)
}

func TestOpen_CanceledContext(t *testing.T) {
	s, _ := newStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Open(ctx, "notes/todo.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheck(t *testing.T) {
	s, dir := newStore(t)

	assert.Equal(t, CheckName, s.Name())
	require.NoError(t, s.Check(context.Background()))

	require.NoError(t, os.RemoveAll(dir))
	assert.Error(t, s.Check(context.Background()))
}

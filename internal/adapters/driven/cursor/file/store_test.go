package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbus-labs/driveingest/internal/core/domain"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "state", "cursor"))
	require.NoError(t, err)
	return s
}

func TestLoad_MissingFile(t *testing.T) {
	s := newStore(t)
	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrMissingCursor)
}

func TestSaveAndLoad(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "token1"))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token1", got)

	// Overwrite advances in place.
	require.NoError(t, s.Save(ctx, "token2"))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token2", got)
}

func TestLoad_TrimsWhitespace(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("  token3\n\n"), 0o600))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token3", got)
}

func TestLoad_EmptyFileIsMissing(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("\n"), 0o600))

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrMissingCursor)
}

func TestSave_RejectsEmptyToken(t *testing.T) {
	s := newStore(t)
	assert.ErrorIs(t, s.Save(context.Background(), ""), domain.ErrInvalidInput)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save(context.Background(), "token"))

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestNewStore_EmptyPath(t *testing.T) {
	_, err := NewStore("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

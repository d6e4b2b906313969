// Package file provides a file-based cursor store. The cursor is a single
// opaque token in a single file, overwritten atomically on each advance.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nimbus-labs/driveingest/internal/core/domain"
	"github.com/nimbus-labs/driveingest/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CursorStore = (*Store)(nil)

// Store persists the change-feed cursor in a local file.
type Store struct {
	path string
}

// NewStore creates a cursor store at the given file path, creating parent
// directories as needed. The file itself is only created on first Save;
// an absent file means the cursor was never bootstrapped.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("cursor store: %w", domain.ErrInvalidInput)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create cursor dir: %w", err)
	}
	return &Store{path: path}, nil
}

// Load returns the persisted token. An absent or empty file maps to
// domain.ErrMissingCursor: the operator must bootstrap before
// notifications can be handled.
func (s *Store) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrMissingCursor
		}
		return "", fmt.Errorf("read cursor: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", domain.ErrMissingCursor
	}
	return token, nil
}

// Save overwrites the token with a write-new-then-rename so a crash mid
// write can never leave a truncated cursor behind.
func (s *Store) Save(_ context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("save cursor: %w", domain.ErrInvalidInput)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".cursor-*")
	if err != nil {
		return fmt.Errorf("create temp cursor: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(token + "\n"); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp cursor: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp cursor: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename cursor: %w", err)
	}
	return nil
}

// Path returns the cursor file path, for startup logging.
func (s *Store) Path() string {
	return s.path
}

// Package file provides a file-based artifact store: one extracted-text
// file per processed Drive file, named deterministically from its ID.
// Purely a debugging aid, enabled behind a config flag.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nimbus-labs/driveingest/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ArtifactStore = (*Store)(nil)

// Store writes extracted-text artifacts into a directory.
type Store struct {
	dir string
}

// NewStore creates the artifact directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Write stores text for a file ID, replacing any previous artifact.
func (s *Store) Write(_ context.Context, fileID, text string) error {
	path := filepath.Join(s.dir, sanitizeID(fileID)+".txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// sanitizeID keeps artifact names flat even if an ID ever carries path
// separators.
func sanitizeID(id string) string {
	id = strings.ReplaceAll(id, "/", "_")
	return strings.ReplaceAll(id, string(os.PathSeparator), "_")
}

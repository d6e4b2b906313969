// Package sqlite provides the durable dead-letter store. Changes whose
// downstream hand-off failed are recorded here, because the cursor always
// moves forward: the record is the only trace that a change was marked
// processed without a document reaching the vector store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nimbus-labs/driveingest/internal/core/domain"
	"github.com/nimbus-labs/driveingest/internal/core/ports/driven"
)

// Ensure DeadLetterStore implements the interface.
var _ driven.DeadLetterStore = (*DeadLetterStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS dead_letters (
	id         TEXT PRIMARY KEY,
	file_id    TEXT NOT NULL,
	mime_type  TEXT NOT NULL DEFAULT '',
	reason     TEXT NOT NULL,
	detail     TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_dead_letters_created ON dead_letters(created_at DESC);
`

// DeadLetterStore is a SQLite-backed dead-letter store.
type DeadLetterStore struct {
	db *sql.DB
}

// NewDeadLetterStore opens (creating if needed) the dead-letter database.
func NewDeadLetterStore(path string) (*DeadLetterStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// WAL keeps the occasional operator List from blocking Record.
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DeadLetterStore{db: db}, nil
}

// Record persists one dead letter. A missing ID or timestamp is filled in.
func (s *DeadLetterStore) Record(ctx context.Context, dl *domain.DeadLetter) error {
	if dl == nil || dl.FileID == "" || dl.Reason == "" {
		return fmt.Errorf("record dead letter: %w", domain.ErrInvalidInput)
	}
	if dl.ID == "" {
		dl.ID = uuid.New().String()
	}
	if dl.CreatedAt == "" {
		dl.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO dead_letters (id, file_id, mime_type, reason, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		dl.ID, dl.FileID, dl.MimeType, dl.Reason, dl.Detail, dl.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert dead letter: %w", err)
	}
	return nil
}

// List returns recorded dead letters, newest first.
func (s *DeadLetterStore) List(ctx context.Context, limit int) ([]domain.DeadLetter, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, file_id, mime_type, reason, detail, created_at
		 FROM dead_letters ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query dead letters: %w", err)
	}
	defer rows.Close()

	var letters []domain.DeadLetter
	for rows.Next() {
		var dl domain.DeadLetter
		if err := rows.Scan(&dl.ID, &dl.FileID, &dl.MimeType, &dl.Reason, &dl.Detail, &dl.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan dead letter: %w", err)
		}
		letters = append(letters, dl)
	}
	return letters, rows.Err()
}

// Close closes the database connection.
func (s *DeadLetterStore) Close() error {
	return s.db.Close()
}

// Package postgres provides a vector store adapter that connects straight
// to the underlying Postgres database instead of going through the REST
// layer. The table shape is identical to the Supabase adapter's; the
// embedding column is pgvector, written as a vector literal.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq" // Postgres driver

	"github.com/nimbus-labs/driveingest/internal/core/domain"
	"github.com/nimbus-labs/driveingest/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// DefaultTable is the destination table.
const DefaultTable = "documents"

// Config holds Postgres connection settings.
type Config struct {
	// DSN is a lib/pq connection string or URL.
	DSN string

	// Table is the destination table (default: documents).
	Table string
}

// Store inserts ingested documents over a direct Postgres connection.
type Store struct {
	db        *sql.DB
	insertSQL string
}

// NewStore opens the database connection. The connection is verified
// lazily; call Ping at startup to fail fast.
func NewStore(cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres: DSN is required")
	}
	if cfg.Table == "" {
		cfg.Table = DefaultTable
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Column names carry the camelCase the record store contract uses,
	// so they must be quoted.
	insertSQL := fmt.Sprintf(
		`INSERT INTO %q (content, embedding, file_id, "userName", "userEmail", "createDate")
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		cfg.Table,
	)

	return &Store{db: db, insertSQL: insertSQL}, nil
}

// Insert writes one record. Partial documents are rejected before any
// database traffic.
func (s *Store) Insert(ctx context.Context, doc *domain.IngestedDocument) error {
	if !doc.Valid() {
		return fmt.Errorf("postgres insert: %w", domain.ErrInvalidInput)
	}

	_, err := s.db.ExecContext(ctx, s.insertSQL,
		doc.Content,
		vectorLiteral(doc.Embedding),
		doc.FileID,
		doc.UserName,
		doc.UserEmail,
		doc.CreateDate,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Ping validates the connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// vectorLiteral renders an embedding in pgvector's input syntax,
// e.g. [0.1,0.2,0.3].
func vectorLiteral(vec []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vec {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}

package driven

import (
	"context"

	"github.com/nimbus-labs/driveingest/internal/core/domain"
)

// VectorStore persists ingested documents with their embeddings.
//
// Implementations may include:
//   - Supabase (REST insert into a pgvector-backed table)
//   - Postgres (direct connection, same table shape)
type VectorStore interface {
	// Insert writes one record. All document fields are required; the
	// store rejects partial records with domain.ErrInvalidInput.
	Insert(ctx context.Context, doc *domain.IngestedDocument) error

	// Ping validates connectivity at startup.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// DeadLetterStore durably records changes whose downstream hand-off failed
// after the cursor had already been committed to move forward.
type DeadLetterStore interface {
	// Record persists one dead letter.
	Record(ctx context.Context, dl *domain.DeadLetter) error

	// List returns recorded dead letters, newest first.
	List(ctx context.Context, limit int) ([]domain.DeadLetter, error)

	// Close releases resources.
	Close() error
}

// ArtifactStore optionally keeps one extracted-text artifact per processed
// file, as a debugging aid.
type ArtifactStore interface {
	// Write stores the extracted text for a file ID, overwriting any
	// previous artifact for the same ID.
	Write(ctx context.Context, fileID, text string) error
}

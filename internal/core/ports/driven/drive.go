package driven

import (
	"context"

	"github.com/nimbus-labs/driveingest/internal/core/domain"
)

// ChangeResolver asks the provider's change log for the next change past a
// cursor position.
//
// Resolve requests exactly one entry. It returns the change (nil when the
// log has nothing past the cursor), the token to advance to (may equal the
// input), and an error on transport/API failure. On error both other
// returns are zero and the caller must treat the cycle as a no-op, not as
// cursor advancement. Resolve never advances the cursor itself.
type ChangeResolver interface {
	Resolve(ctx context.Context, cursor string) (*domain.ChangeRecord, string, error)
}

// MembershipChecker determines whether a file transitively resides under a
// target folder by walking parent links upward.
//
// IsDescendant returns false on any doubt: fetch failures prune the failing
// branch, cycles short-circuit, and traversal depth is bounded. It never
// returns an error; a membership check that cannot complete is a non-match.
type MembershipChecker interface {
	IsDescendant(ctx context.Context, fileID, folderID string) bool
}

// TextExtractor produces a file's plain-text content.
//
// Extract never fails past its boundary: every failure degrades to an
// ExtractionResult whose Kind says why the text is empty.
type TextExtractor interface {
	Extract(ctx context.Context, fileID, mimeType string) domain.ExtractionResult
}

// FileDescriber fetches the metadata the direct-notification path needs to
// route extraction for a file named in the webhook body.
type FileDescriber interface {
	Describe(ctx context.Context, fileID string) (*domain.FileInfo, error)
}

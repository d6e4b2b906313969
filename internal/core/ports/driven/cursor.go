package driven

import "context"

// CursorStore persists the single opaque change-feed position token across
// process restarts.
//
// The persisted value always equals the position already fully processed:
// callers save only after a change's consequences have been handled, never
// before. The store itself does not serialise callers; the orchestrator
// owns the load-mutate-save critical section.
type CursorStore interface {
	// Load returns the persisted token. Returns domain.ErrMissingCursor
	// if no token has ever been saved.
	Load(ctx context.Context) (string, error)

	// Save overwrites the persisted token atomically.
	Save(ctx context.Context, token string) error
}

package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nimbus-labs/driveingest/internal/core/domain"
	"github.com/nimbus-labs/driveingest/internal/core/ports/driven"
	"github.com/nimbus-labs/driveingest/internal/core/ports/driving"
	"github.com/nimbus-labs/driveingest/internal/logger"
)

// Ensure Ingestor implements the interface.
var _ driving.NotificationHandler = (*Ingestor)(nil)

// ResourceStateChange is the only X-Goog-Resource-State value that
// triggers processing.
const ResourceStateChange = "change"

// Deps bundles everything the Ingestor needs. Artifacts and DeadLetters
// are optional; nil disables them.
type Deps struct {
	Cursor     driven.CursorStore
	Resolver   driven.ChangeResolver
	Membership driven.MembershipChecker
	Extractor  driven.TextExtractor
	Describer  driven.FileDescriber
	Embedder   driven.EmbeddingService
	Store      driven.VectorStore

	DeadLetters driven.DeadLetterStore
	Artifacts   driven.ArtifactStore

	// WatchFolderID restricts the change feed to descendants of one
	// folder. Empty disables the ancestry filter.
	WatchFolderID string

	// OwnerName and OwnerEmail attribute documents ingested through the
	// change feed, which carries no user of its own.
	OwnerName  string
	OwnerEmail string
}

// Ingestor drives one change notification through resolve, filter,
// extract, embed and store, and owns the cursor's load-mutate-save
// lifecycle.
type Ingestor struct {
	deps Deps

	// mu serialises change-feed handling; the cursor file is a single
	// shared resource with no locking of its own.
	mu sync.Mutex
}

// NewIngestor creates the orchestrator.
func NewIngestor(deps Deps) *Ingestor {
	return &Ingestor{deps: deps}
}

// HandleChangeNotification processes one change-feed push.
//
// The notification body carries nothing; the change itself comes from the
// change feed at the persisted cursor position. Every early exit that saw
// a newer feed position still advances the cursor, so an already-seen but
// filtered-out change is never resolved twice.
func (s *Ingestor) HandleChangeNotification(ctx context.Context, resourceState string) (domain.Status, error) {
	if resourceState != ResourceStateChange {
		logger.Debug("Ignoring notification with resource state %q", resourceState)
		return domain.StatusIgnored, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cursor, err := s.deps.Cursor.Load(ctx)
	if err != nil {
		return domain.StatusError, fmt.Errorf("load cursor: %w", err)
	}

	change, next, err := s.deps.Resolver.Resolve(ctx, cursor)
	if err != nil {
		// No-op this cycle. The cursor stays put so the change is
		// resolved again on the next notification.
		logger.Error("Resolving change failed: %v", err)
		return domain.StatusError, nil
	}

	if !change.Actionable() {
		s.advanceCursor(ctx, cursor, next)
		return domain.StatusNoFileFound, nil
	}

	if !domain.MIMEAllowed(change.MimeType) {
		logger.Info("Skipping %s: MIME type %s not allowed", change.FileID, change.MimeType)
		s.advanceCursor(ctx, cursor, next)
		return domain.StatusIgnored, nil
	}

	if s.deps.WatchFolderID != "" && !s.deps.Membership.IsDescendant(ctx, change.FileID, s.deps.WatchFolderID) {
		logger.Info("Skipping %s: not under watched folder %s", change.FileID, s.deps.WatchFolderID)
		s.advanceCursor(ctx, cursor, next)
		return domain.StatusIgnored, nil
	}

	res := s.deps.Extractor.Extract(ctx, change.FileID, change.MimeType)
	if !res.Usable() {
		logger.Warn("No text extracted from %s (%s): %s", change.FileID, change.MimeType, res.Kind)
		s.advanceCursor(ctx, cursor, next)
		return domain.StatusReceivedAndProcessed, nil
	}
	logger.Info("Extracted %d bytes from %s (%s)", res.Size(), change.FileID, change.MimeType)

	s.writeArtifact(ctx, change.FileID, res.Text)

	doc := &domain.IngestedDocument{
		Content:    res.Text,
		FileID:     change.FileID,
		UserName:   s.deps.OwnerName,
		UserEmail:  s.deps.OwnerEmail,
		CreateDate: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.persist(ctx, doc, change.MimeType); err != nil {
		// The cursor advances anyway; the change is dead-lettered, not
		// retried forever.
		logger.Error("Hand-off for %s failed: %v", change.FileID, err)
	}

	s.advanceCursor(ctx, cursor, next)
	return domain.StatusReceivedAndProcessed, nil
}

// HandleFileNotification processes a direct-body notification naming the
// changed file itself. The change feed and the cursor are not involved.
func (s *Ingestor) HandleFileNotification(ctx context.Context, n *domain.FileNotification) (domain.Status, error) {
	if n == nil || n.ID == "" || n.User.DisplayName == "" || n.User.Email == "" || n.TimeCreated == "" {
		return domain.StatusError, fmt.Errorf("file notification: %w", domain.ErrInvalidInput)
	}

	info, err := s.deps.Describer.Describe(ctx, n.ID)
	if err != nil {
		logger.Error("Describing %s failed: %v", n.ID, err)
		return domain.StatusError, nil
	}

	if !domain.MIMEAllowed(info.MimeType) {
		logger.Info("Skipping %s: MIME type %s not allowed", n.ID, info.MimeType)
		return domain.StatusIgnored, nil
	}

	res := s.deps.Extractor.Extract(ctx, n.ID, info.MimeType)
	if !res.Usable() {
		logger.Warn("No text extracted from %s (%s): %s", n.ID, info.MimeType, res.Kind)
		return domain.StatusProcessed, nil
	}

	s.writeArtifact(ctx, n.ID, res.Text)

	doc := &domain.IngestedDocument{
		Content:    res.Text,
		FileID:     n.ID,
		UserName:   n.User.DisplayName,
		UserEmail:  n.User.Email,
		CreateDate: n.TimeCreated,
	}
	if err := s.persist(ctx, doc, info.MimeType); err != nil {
		logger.Error("Hand-off for %s failed: %v", n.ID, err)
		return domain.StatusError, nil
	}

	return domain.StatusProcessed, nil
}

// persist embeds the document's content and inserts the record. On
// failure the document is dead-lettered so it is not silently lost.
func (s *Ingestor) persist(ctx context.Context, doc *domain.IngestedDocument, mimeType string) error {
	vector, err := s.deps.Embedder.Embed(ctx, doc.Content)
	if err != nil {
		s.deadLetter(ctx, doc.FileID, mimeType, "embed", err)
		return fmt.Errorf("embed: %w", err)
	}
	doc.Embedding = vector

	if err := s.deps.Store.Insert(ctx, doc); err != nil {
		s.deadLetter(ctx, doc.FileID, mimeType, "store", err)
		return fmt.Errorf("store: %w", err)
	}

	logger.Info("Stored document for %s (%d dimensions)", doc.FileID, len(vector))
	return nil
}

// advanceCursor saves the next feed position when it differs from the one
// loaded. Save failures are logged, not propagated: the worst case is
// re-resolving the same change on the next notification.
func (s *Ingestor) advanceCursor(ctx context.Context, current, next string) {
	if next == "" || next == current {
		return
	}
	if err := s.deps.Cursor.Save(ctx, next); err != nil {
		logger.Error("Saving cursor %q failed: %v", next, err)
		return
	}
	logger.Debug("Cursor advanced to %q", next)
}

func (s *Ingestor) writeArtifact(ctx context.Context, fileID, text string) {
	if s.deps.Artifacts == nil {
		return
	}
	if err := s.deps.Artifacts.Write(ctx, fileID, text); err != nil {
		logger.Warn("Writing artifact for %s failed: %v", fileID, err)
	}
}

func (s *Ingestor) deadLetter(ctx context.Context, fileID, mimeType, reason string, cause error) {
	if s.deps.DeadLetters == nil {
		return
	}
	dl := &domain.DeadLetter{
		FileID:   fileID,
		MimeType: mimeType,
		Reason:   reason,
		Detail:   cause.Error(),
	}
	if err := s.deps.DeadLetters.Record(ctx, dl); err != nil {
		logger.Error("Recording dead letter for %s failed: %v", fileID, err)
	}
}

package drive

import (
	"context"

	"google.golang.org/api/drive/v3"

	"github.com/nimbus-labs/driveingest/internal/connectors/google"
	"github.com/nimbus-labs/driveingest/internal/core/domain"
	"github.com/nimbus-labs/driveingest/internal/core/ports/driven"
)

// MaxFetchSize caps downloaded and exported content at 5MB. Larger files
// are truncated at the reader, never buffered whole.
const MaxFetchSize = 5 * 1024 * 1024

// DefaultMaxDepth bounds the upward ancestry walk. Drive folder trees are
// shallow in practice; anything deeper is considered a non-match rather
// than a reason to keep hitting the API.
const DefaultMaxDepth = 20

// Client wraps a Drive service with the operations the ingestion core
// needs. All calls go through the shared rate limiter.
type Client struct {
	svc      *drive.Service
	limiter  *google.RateLimiter
	maxDepth int
}

// Compile-time port checks.
var (
	_ driven.ChangeResolver    = (*Client)(nil)
	_ driven.MembershipChecker = (*Client)(nil)
	_ driven.TextExtractor     = (*Client)(nil)
	_ driven.FileDescriber     = (*Client)(nil)
)

// NewClient creates a Drive client around an authenticated service.
func NewClient(svc *drive.Service) *Client {
	return &Client{
		svc:      svc,
		limiter:  google.NewRateLimiter(),
		maxDepth: DefaultMaxDepth,
	}
}

// Describe fetches the metadata needed to route extraction for a file.
func (c *Client) Describe(ctx context.Context, fileID string) (*domain.FileInfo, error) {
	if fileID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	f, err := c.svc.Files.Get(fileID).Fields("id, name, mimeType").Context(ctx).Do()
	if err != nil {
		c.recordIfRateLimited(err)
		return nil, google.WrapError(err)
	}

	return &domain.FileInfo{
		ID:       f.Id,
		Name:     f.Name,
		MimeType: f.MimeType,
	}, nil
}

// recordIfRateLimited feeds 429 responses back into the limiter so the
// next call backs off.
func (c *Client) recordIfRateLimited(err error) {
	if google.IsRateLimited(err) {
		c.limiter.RecordRateLimitError(0)
	}
}

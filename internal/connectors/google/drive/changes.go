package drive

import (
	"context"
	"fmt"

	"github.com/nimbus-labs/driveingest/internal/connectors/google"
	"github.com/nimbus-labs/driveingest/internal/core/domain"
)

// changeFields selects exactly what the ingestion core consumes: the file
// identifier, the routing MIME type, the parents for ancestry filtering,
// and the tokens to advance the cursor with.
const changeFields = "nextPageToken, newStartPageToken, changes(fileId, file(name, mimeType, parents))"

// Resolve asks the change feed for the next entry past cursor.
//
// It requests a single change. Returns (nil, next, nil) when the feed has
// nothing past the cursor; the returned token may still differ from the
// input and must be persisted by the caller. On any transport/API failure
// it returns (nil, "", err) and the caller must treat the cycle as a
// no-op. Resolve never advances the cursor itself.
func (c *Client) Resolve(ctx context.Context, cursor string) (*domain.ChangeRecord, string, error) {
	if cursor == "" {
		return nil, "", fmt.Errorf("resolve change: %w", domain.ErrInvalidInput)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	resp, err := c.svc.Changes.List(cursor).
		PageSize(1).
		Fields(changeFields).
		RestrictToMyDrive(true).
		Context(ctx).
		Do()
	if err != nil {
		c.recordIfRateLimited(err)
		return nil, "", fmt.Errorf("list changes: %w", google.WrapError(err))
	}

	// newStartPageToken is only present on the feed's last page; between
	// pages the feed hands out nextPageToken instead.
	next := resp.NewStartPageToken
	if next == "" {
		next = resp.NextPageToken
	}

	if len(resp.Changes) == 0 {
		return nil, next, nil
	}

	ch := resp.Changes[0]
	rec := &domain.ChangeRecord{FileID: ch.FileId}
	if ch.File != nil {
		rec.Name = ch.File.Name
		rec.MimeType = ch.File.MimeType
		rec.ParentIDs = ch.File.Parents
	}
	return rec, next, nil
}

// StartPageToken fetches the feed's current position for bootstrapping
// the cursor. Everything before this token is invisible to ingestion.
func (c *Client) StartPageToken(ctx context.Context) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := c.svc.Changes.GetStartPageToken().Context(ctx).Do()
	if err != nil {
		c.recordIfRateLimited(err)
		return "", fmt.Errorf("get start page token: %w", google.WrapError(err))
	}
	return resp.StartPageToken, nil
}

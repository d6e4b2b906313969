package drive

import (
	"context"

	"github.com/nimbus-labs/driveingest/internal/core/domain"
	"github.com/nimbus-labs/driveingest/internal/logger"
)

// IsDescendant reports whether fileID transitively resides under folderID
// by walking parent links upward.
//
// The walk keeps an explicit visited set: shared drives and malformed
// metadata can produce parent cycles, and a node seen twice in the same
// traversal short-circuits to false for that branch. Fetch failures on a
// node are logged and prune that branch only. Depth is bounded by the
// client's maximum; a walk that runs out of budget is a non-match.
func (c *Client) IsDescendant(ctx context.Context, fileID, folderID string) bool {
	if fileID == "" || folderID == "" {
		return false
	}
	visited := make(map[string]bool)
	return c.walkParents(ctx, fileID, folderID, visited, 0)
}

func (c *Client) walkParents(ctx context.Context, nodeID, targetID string, visited map[string]bool, depth int) bool {
	if depth >= c.maxDepth {
		logger.Warn("ancestry walk for %s exceeded depth %d, treating as non-match", nodeID, c.maxDepth)
		return false
	}
	if visited[nodeID] {
		return false
	}
	visited[nodeID] = true

	parents, err := c.fetchParents(ctx, nodeID)
	if err != nil {
		logger.Warn("ancestry fetch for %s failed, pruning branch: %v", nodeID, err)
		return false
	}

	// Direct hit before recursing so a depth-0 match never costs extra
	// API calls.
	for _, p := range parents {
		if p == targetID {
			return true
		}
	}
	for _, p := range parents {
		if c.walkParents(ctx, p, targetID, visited, depth+1) {
			return true
		}
	}
	return false
}

func (c *Client) fetchParents(ctx context.Context, nodeID string) ([]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	f, err := c.svc.Files.Get(nodeID).Fields("parents").Context(ctx).Do()
	if err != nil {
		c.recordIfRateLimited(err)
		return nil, err
	}
	return f.Parents, nil
}

// MatchesFolder applies the optional folder filter to a change record.
// An empty folderID disables filtering. A record whose direct parents
// already include the folder skips the API walk entirely.
func (c *Client) MatchesFolder(ctx context.Context, rec *domain.ChangeRecord, folderID string) bool {
	if folderID == "" {
		return true
	}
	for _, p := range rec.ParentIDs {
		if p == folderID {
			return true
		}
	}
	return c.IsDescendant(ctx, rec.FileID, folderID)
}

package driving

import (
	"context"

	"github.com/nimbus-labs/driveingest/internal/core/domain"
)

// NotificationHandler processes incoming Drive change notifications.
//
// Both methods return a Status for the webhook response body plus an error
// for failures the transport should surface as a server error. A non-nil
// error always pairs with domain.StatusError.
type NotificationHandler interface {
	// HandleChangeNotification processes one change-feed push. The
	// resourceState comes from the X-Goog-Resource-State header; anything
	// other than "change" is acknowledged and ignored.
	HandleChangeNotification(ctx context.Context, resourceState string) (domain.Status, error)

	// HandleFileNotification processes a direct-body notification that
	// names the changed file itself, bypassing the change feed and the
	// cursor entirely.
	HandleFileNotification(ctx context.Context, n *domain.FileNotification) (domain.Status, error)
}

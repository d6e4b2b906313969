package domain

// ChangeRecord represents one detected modification event from the Drive
// change feed. It is produced transiently per resolver call and never
// persisted; only its consequences and the cursor are.
type ChangeRecord struct {
	// FileID is the opaque identifier of the changed file.
	FileID string

	// MimeType identifies the content type. Empty means the change is not
	// actionable (removed file, permission-only change).
	MimeType string

	// ParentIDs are the folder identifiers containing the file. May be
	// empty for root-level or fully removed files.
	ParentIDs []string

	// Name is the file's display name, kept for logging.
	Name string
}

// Actionable reports whether the record carries enough information to
// route extraction.
func (c *ChangeRecord) Actionable() bool {
	return c != nil && c.FileID != "" && c.MimeType != ""
}

// FileInfo is the subset of file metadata the direct-notification path
// needs to route extraction.
type FileInfo struct {
	ID       string
	Name     string
	MimeType string
}

// NotificationUser identifies the account that triggered a direct file
// notification.
type NotificationUser struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// FileNotification is the direct-body webhook variant: the payload names
// the changed file itself instead of pointing at the change feed.
type FileNotification struct {
	ID          string           `json:"id"`
	User        NotificationUser `json:"user"`
	TimeCreated string           `json:"timeCreated"`
}

// Status is the outcome reported in webhook responses.
type Status string

// Webhook response statuses.
const (
	// StatusIgnored means the notification was acknowledged but not acted
	// on (wrong resource state, filtered MIME type, folder mismatch).
	StatusIgnored Status = "ignored"

	// StatusError means the request could not be handled at all.
	StatusError Status = "error"

	// StatusNoFileFound means the change feed had no actionable entry.
	StatusNoFileFound Status = "no_file_found"

	// StatusReceivedAndProcessed means a change-feed notification was
	// handled to completion.
	StatusReceivedAndProcessed Status = "received_and_processed"

	// StatusProcessed means a direct file notification was handled to
	// completion.
	StatusProcessed Status = "processed"
)

// Package drive implements the change-tracking and ingestion core against
// the Google Drive v3 API: resolving the change feed one entry at a time,
// checking folder ancestry with cycle protection, and extracting plain
// text from the supported document formats.
package drive

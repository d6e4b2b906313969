// Package google provides shared plumbing for Google API access: Drive
// service construction, token source adaptation, API error classification
// and request rate limiting. Drive-specific behaviour lives in the drive
// subpackage.
package google

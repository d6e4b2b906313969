package domain

// Canonical MIME strings as Drive reports them. Matching is exact and
// case-sensitive; the provider never varies case.
const (
	MimeGoogleDoc = "application/vnd.google-apps.document"
	MimeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePDF       = "application/pdf"
	MimePlainText = "text/plain"
	MimeFolder    = "application/vnd.google-apps.folder"
)

// mimeGoogleAppsPrefix marks the whole provider-native family. Only the
// document type is allow-listed, but extraction routes any native type
// through the export branch.
const mimeGoogleAppsPrefix = "application/vnd.google-apps."

// Format is a closed classification of document formats the extractor
// knows about. Adding a format means adding a constant and a case in
// ClassifyMIME, which keeps dispatch a compile-time-checked enumeration
// instead of a string-prefix fallthrough chain.
type Format int

// Supported formats.
const (
	// FormatUnsupported covers every MIME type with no decoder, including
	// allow-listed ones such as PDF.
	FormatUnsupported Format = iota

	// FormatGoogleDoc is the provider-native family, exported to text.
	FormatGoogleDoc

	// FormatDocx is the Open XML word-processor container.
	FormatDocx

	// FormatPDF is allow-listed but has no decoder wired in.
	FormatPDF

	// FormatPlainText is raw text passthrough.
	FormatPlainText
)

// String returns a short label for logging.
func (f Format) String() string {
	switch f {
	case FormatGoogleDoc:
		return "google-doc"
	case FormatDocx:
		return "docx"
	case FormatPDF:
		return "pdf"
	case FormatPlainText:
		return "plain-text"
	default:
		return "unsupported"
	}
}

// ClassifyMIME maps a provider MIME string to a Format.
func ClassifyMIME(mimeType string) Format {
	switch mimeType {
	case MimeGoogleDoc:
		return FormatGoogleDoc
	case MimeDocx:
		return FormatDocx
	case MimePDF:
		return FormatPDF
	case MimePlainText:
		return FormatPlainText
	}
	// Sheets, Slides and the rest of the native family export the same
	// way Docs do, even though only Docs are allow-listed for ingestion.
	if len(mimeType) > len(mimeGoogleAppsPrefix) && mimeType[:len(mimeGoogleAppsPrefix)] == mimeGoogleAppsPrefix {
		return FormatGoogleDoc
	}
	return FormatUnsupported
}

// AllowedMIMETypes is the exact ingestion allow-list. No wildcards, no
// partial matches.
var AllowedMIMETypes = []string{
	MimeGoogleDoc,
	MimeDocx,
	MimePDF,
	MimePlainText,
}

// MIMEAllowed reports whether a MIME type is eligible for ingestion.
func MIMEAllowed(mimeType string) bool {
	for _, m := range AllowedMIMETypes {
		if mimeType == m {
			return true
		}
	}
	return false
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMIME(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		want     Format
	}{
		{"google doc", "application/vnd.google-apps.document", FormatGoogleDoc},
		{"google sheet routes to export branch", "application/vnd.google-apps.spreadsheet", FormatGoogleDoc},
		{"google slides routes to export branch", "application/vnd.google-apps.presentation", FormatGoogleDoc},
		{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", FormatDocx},
		{"pdf", "application/pdf", FormatPDF},
		{"plain text", "text/plain", FormatPlainText},
		{"html", "text/html", FormatUnsupported},
		{"empty", "", FormatUnsupported},
		{"prefix alone", "application/vnd.google-apps.", FormatUnsupported},
		{"case sensitive", "Text/Plain", FormatUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMIME(tt.mimeType))
		})
	}
}

func TestMIMEAllowed(t *testing.T) {
	for _, m := range AllowedMIMETypes {
		assert.True(t, MIMEAllowed(m), m)
	}

	disallowed := []string{
		"",
		"text/html",
		"text/plain; charset=utf-8",
		"application/vnd.google-apps.spreadsheet",
		"application/vnd.google-apps.folder",
		"TEXT/PLAIN",
		"application/pdf ",
	}
	for _, m := range disallowed {
		assert.False(t, MIMEAllowed(m), m)
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "google-doc", FormatGoogleDoc.String())
	assert.Equal(t, "docx", FormatDocx.String())
	assert.Equal(t, "pdf", FormatPDF.String())
	assert.Equal(t, "plain-text", FormatPlainText.String())
	assert.Equal(t, "unsupported", FormatUnsupported.String())
}

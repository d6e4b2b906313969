package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractionResultUsable(t *testing.T) {
	assert.True(t, ExtractionResult{Text: "hello", Kind: ExtractOK}.Usable())
	assert.False(t, ExtractionResult{Text: "", Kind: ExtractOK}.Usable())
	assert.False(t, ExtractionResult{Text: "x", Kind: ExtractFetchFailed}.Usable())
	assert.False(t, ExtractionResult{Kind: ExtractNoDecoder}.Usable())
	assert.False(t, ExtractionResult{Kind: ExtractCorrupt}.Usable())
}

func TestIngestedDocumentValid(t *testing.T) {
	full := IngestedDocument{
		Content:    "text",
		Embedding:  []float32{0.1, 0.2},
		FileID:     "f1",
		UserName:   "Ada",
		UserEmail:  "ada@example.com",
		CreateDate: "2026-01-01T00:00:00Z",
	}
	assert.True(t, full.Valid())

	var nilDoc *IngestedDocument
	assert.False(t, nilDoc.Valid())

	missingEmbedding := full
	missingEmbedding.Embedding = nil
	assert.False(t, missingEmbedding.Valid())

	missingContent := full
	missingContent.Content = ""
	assert.False(t, missingContent.Valid())

	missingUser := full
	missingUser.UserName = ""
	assert.False(t, missingUser.Valid())
}

func TestChangeRecordActionable(t *testing.T) {
	var nilRec *ChangeRecord
	assert.False(t, nilRec.Actionable())
	assert.False(t, (&ChangeRecord{FileID: "f1"}).Actionable())
	assert.False(t, (&ChangeRecord{MimeType: "text/plain"}).Actionable())
	assert.True(t, (&ChangeRecord{FileID: "f1", MimeType: "text/plain"}).Actionable())
}

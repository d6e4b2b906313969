package drive

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/nimbus-labs/driveingest/internal/core/domain"
)

// documentXML mirrors the shape of word/document.xml far enough to reach
// paragraph text runs.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocxText extracts paragraph text from an Open XML word-processor
// container: open the bytes as a ZIP archive, find word/document.xml, and
// concatenate the text of each paragraph in document order separated by
// newlines. A container that fails to open or parse is reported as
// corrupt; a container with no document part yields empty text.
func parseDocxText(data []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCorruptContainer, err)
	}

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("%w: open document part: %v", domain.ErrCorruptContainer, err)
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("%w: read document part: %v", domain.ErrCorruptContainer, err)
		}

		var doc documentXML
		if err := xml.Unmarshal(content, &doc); err != nil {
			return "", fmt.Errorf("%w: parse document part: %v", domain.ErrCorruptContainer, err)
		}

		var result strings.Builder
		for i, para := range doc.Body.Paragraphs {
			if i > 0 {
				result.WriteString("\n")
			}
			for _, r := range para.Runs {
				for _, text := range r.Text {
					result.WriteString(text.Content)
				}
			}
		}
		return strings.TrimSpace(result.String()), nil
	}

	return "", nil
}

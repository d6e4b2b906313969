package drive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nimbus-labs/driveingest/internal/connectors/google"
	"github.com/nimbus-labs/driveingest/internal/core/domain"
	"github.com/nimbus-labs/driveingest/internal/logger"
)

// ExportMimeText is the export target for provider-native documents.
const ExportMimeText = "text/plain"

// Extract produces the plain-text content of a file, branching on its
// classified format. It never fails past its boundary: every failure
// degrades to an ExtractionResult whose Kind carries the reason, and the
// reason is logged with enough context to diagnose after the fact.
func (c *Client) Extract(ctx context.Context, fileID, mimeType string) domain.ExtractionResult {
	switch domain.ClassifyMIME(mimeType) {
	case domain.FormatGoogleDoc:
		data, err := c.exportFile(ctx, fileID, ExportMimeText)
		if err != nil {
			logger.Error("export of %s (%s) failed: %v", fileID, mimeType, err)
			return domain.ExtractionResult{Kind: domain.ExtractFetchFailed}
		}
		return domain.ExtractionResult{Text: decodeLossyUTF8(data), Kind: domain.ExtractOK}

	case domain.FormatDocx:
		data, err := c.downloadFile(ctx, fileID)
		if err != nil {
			logger.Error("download of %s (%s) failed: %v", fileID, mimeType, err)
			return domain.ExtractionResult{Kind: domain.ExtractFetchFailed}
		}
		text, err := parseDocxText(data)
		if err != nil {
			logger.Error("parse of %s failed: %v", fileID, err)
			return domain.ExtractionResult{Kind: domain.ExtractCorrupt}
		}
		return domain.ExtractionResult{Text: text, Kind: domain.ExtractOK}

	case domain.FormatPlainText:
		data, err := c.downloadFile(ctx, fileID)
		if err != nil {
			logger.Error("download of %s (%s) failed: %v", fileID, mimeType, err)
			return domain.ExtractionResult{Kind: domain.ExtractFetchFailed}
		}
		return domain.ExtractionResult{Text: decodeLossyUTF8(data), Kind: domain.ExtractOK}

	default:
		// PDF lands here: allow-listed but no decoder is wired in. This is
		// a distinct terminal outcome, not a fetch failure.
		logger.Warn("no decoder available for %s (%s), skipping extraction", fileID, mimeType)
		return domain.ExtractionResult{Kind: domain.ExtractNoDecoder}
	}
}

// exportFile exports a provider-native file to the given format and
// drains the body fully before returning.
func (c *Client) exportFile(ctx context.Context, fileID, exportMime string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.svc.Files.Export(fileID, exportMime).Context(ctx).Download()
	if err != nil {
		c.recordIfRateLimited(err)
		return nil, fmt.Errorf("export file: %w", google.WrapError(err))
	}
	return drainBody(resp)
}

// downloadFile fetches a file's raw bytes and drains the body fully
// before returning.
func (c *Client) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		c.recordIfRateLimited(err)
		return nil, fmt.Errorf("download file: %w", google.WrapError(err))
	}
	return drainBody(resp)
}

// drainBody reads a download response to EOF under the size cap. A short
// read is an error, never a valid partial result: decoding must only see
// fully transferred content.
func drainBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxFetchSize))
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return data, nil
}

// decodeLossyUTF8 converts raw bytes to a string, dropping invalid byte
// sequences instead of failing. Exported documents occasionally carry
// stray bytes from legacy encodings.
func decodeLossyUTF8(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}

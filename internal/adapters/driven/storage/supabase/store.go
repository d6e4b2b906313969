// Package supabase provides a vector store adapter using the Supabase
// REST interface (PostgREST). Records land in a pgvector-backed table.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nimbus-labs/driveingest/internal/core/domain"
	"github.com/nimbus-labs/driveingest/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Default configuration values.
const (
	DefaultTable   = "documents"
	DefaultTimeout = 30 * time.Second
)

// Config holds Supabase connection settings.
type Config struct {
	// URL is the project base URL, e.g. https://proj.supabase.co.
	URL string

	// Key is the service-role or anon API key.
	Key string

	// Table is the destination table (default: documents).
	Table string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Store inserts ingested documents through the Supabase REST API.
type Store struct {
	client *http.Client
	url    string
	key    string
	table  string
}

// record is the REST payload. Field names match the table columns the
// record store expects.
type record struct {
	Content    string    `json:"content"`
	Embedding  []float32 `json:"embedding"`
	FileID     string    `json:"file_id"`
	UserName   string    `json:"userName"`
	UserEmail  string    `json:"userEmail"`
	CreateDate string    `json:"createDate"`
}

// NewStore creates a Supabase-backed vector store.
func NewStore(cfg Config) (*Store, error) {
	if cfg.URL == "" || cfg.Key == "" {
		return nil, fmt.Errorf("supabase: URL and key are required")
	}
	if cfg.Table == "" {
		cfg.Table = DefaultTable
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Store{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:   cfg.URL,
		key:   cfg.Key,
		table: cfg.Table,
	}, nil
}

// Insert writes one record. Partial documents are rejected before any
// network traffic.
func (s *Store) Insert(ctx context.Context, doc *domain.IngestedDocument) error {
	if !doc.Valid() {
		return fmt.Errorf("supabase insert: %w", domain.ErrInvalidInput)
	}

	jsonBody, err := json.Marshal(record{
		Content:    doc.Content,
		Embedding:  doc.Embedding,
		FileID:     doc.FileID,
		UserName:   doc.UserName,
		UserEmail:  doc.UserEmail,
		CreateDate: doc.CreateDate,
	})
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.url+"/rest/v1/"+s.table,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Prefer", "return=minimal")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: status %d: %s", domain.ErrStoreUnavailable, resp.StatusCode, string(body))
	}
	return nil
}

// Ping validates connectivity and the API key against the REST root.
func (s *Store) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url+"/rest/v1/", http.NoBody)
	if err != nil {
		return fmt.Errorf("supabase: failed to create ping request: %w", err)
	}
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("supabase: API returned status %d", resp.StatusCode)
	}
	return nil
}

// Close releases resources.
func (s *Store) Close() error {
	return nil
}

package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbus-labs/driveingest/internal/core/domain"
)

func validDoc() *domain.IngestedDocument {
	return &domain.IngestedDocument{
		Content:    "document text",
		Embedding:  []float32{0.1, 0.2, 0.3},
		FileID:     "f1",
		UserName:   "Ada",
		UserEmail:  "ada@example.com",
		CreateDate: "2026-08-01T12:00:00Z",
	}
}

func TestInsert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/documents", r.URL.Path)
		assert.Equal(t, "sb-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer sb-key", r.Header.Get("Authorization"))

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "document text", got["content"])
		assert.Equal(t, "f1", got["file_id"])
		assert.Equal(t, "Ada", got["userName"])
		assert.Equal(t, "ada@example.com", got["userEmail"])
		assert.Equal(t, "2026-08-01T12:00:00Z", got["createDate"])
		assert.Len(t, got["embedding"], 3)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	store, err := NewStore(Config{URL: srv.URL, Key: "sb-key"})
	require.NoError(t, err)

	assert.NoError(t, store.Insert(context.Background(), validDoc()))
}

func TestInsert_RejectsPartialDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected for a partial document")
	}))
	defer srv.Close()

	store, err := NewStore(Config{URL: srv.URL, Key: "sb-key"})
	require.NoError(t, err)

	doc := validDoc()
	doc.Embedding = nil
	assert.ErrorIs(t, store.Insert(context.Background(), doc), domain.ErrInvalidInput)
}

func TestInsert_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "permission denied", http.StatusForbidden)
	}))
	defer srv.Close()

	store, err := NewStore(Config{URL: srv.URL, Key: "sb-key"})
	require.NoError(t, err)

	err = store.Insert(context.Background(), validDoc())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestNewStore_RequiresURLAndKey(t *testing.T) {
	_, err := NewStore(Config{})
	assert.Error(t, err)
	_, err = NewStore(Config{URL: "https://x"})
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store, err := NewStore(Config{URL: srv.URL, Key: "sb-key"})
	require.NoError(t, err)
	assert.NoError(t, store.Ping(context.Background()))
}

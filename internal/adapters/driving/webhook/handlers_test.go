package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbus-labs/driveingest/internal/core/domain"
)

// mockHandler implements driving.NotificationHandler.
type mockHandler struct {
	changeStatus domain.Status
	changeErr    error
	fileStatus   domain.Status
	fileErr      error

	gotState string
	gotBody  *domain.FileNotification
}

func (m *mockHandler) HandleChangeNotification(_ context.Context, resourceState string) (domain.Status, error) {
	m.gotState = resourceState
	return m.changeStatus, m.changeErr
}

func (m *mockHandler) HandleFileNotification(_ context.Context, n *domain.FileNotification) (domain.Status, error) {
	m.gotBody = n
	return m.fileStatus, m.fileErr
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["status"]
}

func TestHandleChange_Processed(t *testing.T) {
	h := &mockHandler{changeStatus: domain.StatusReceivedAndProcessed}
	srv := NewServer(":0", h)

	req := httptest.NewRequest(http.MethodPost, "/webhook/drive", nil)
	req.Header.Set(ResourceStateHeader, "change")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "received_and_processed", decodeStatus(t, rec))
	assert.Equal(t, "change", h.gotState)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestHandleChange_MissingCursorIs500(t *testing.T) {
	h := &mockHandler{changeStatus: domain.StatusError, changeErr: domain.ErrMissingCursor}
	srv := NewServer(":0", h)

	req := httptest.NewRequest(http.MethodPost, "/webhook/drive", nil)
	req.Header.Set(ResourceStateHeader, "change")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error", decodeStatus(t, rec))
}

func TestHandleChange_IgnoredState(t *testing.T) {
	h := &mockHandler{changeStatus: domain.StatusIgnored}
	srv := NewServer(":0", h)

	req := httptest.NewRequest(http.MethodPost, "/webhook/drive", nil)
	req.Header.Set(ResourceStateHeader, "sync")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ignored", decodeStatus(t, rec))
	assert.Equal(t, "sync", h.gotState)
}

func TestHandleFile_Processed(t *testing.T) {
	h := &mockHandler{fileStatus: domain.StatusProcessed}
	srv := NewServer(":0", h)

	body := `{"id":"file1","user":{"displayName":"Ada","email":"ada@example.com"},"timeCreated":"2025-06-01T12:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/drive/file", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "processed", decodeStatus(t, rec))

	require.NotNil(t, h.gotBody)
	assert.Equal(t, "file1", h.gotBody.ID)
	assert.Equal(t, "Ada", h.gotBody.User.DisplayName)
	assert.Equal(t, "ada@example.com", h.gotBody.User.Email)
	assert.Equal(t, "2025-06-01T12:00:00Z", h.gotBody.TimeCreated)
}

func TestHandleFile_MalformedJSON(t *testing.T) {
	h := &mockHandler{}
	srv := NewServer(":0", h)

	req := httptest.NewRequest(http.MethodPost, "/webhook/drive/file", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", decodeStatus(t, rec))
	assert.Nil(t, h.gotBody, "handler must not run on a bad body")
}

func TestHandleFile_InvalidInputIs400(t *testing.T) {
	h := &mockHandler{fileStatus: domain.StatusError, fileErr: domain.ErrInvalidInput}
	srv := NewServer(":0", h)

	req := httptest.NewRequest(http.MethodPost, "/webhook/drive/file", strings.NewReader(`{"id":"file1"}`))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", decodeStatus(t, rec))
}

func TestHealthz(t *testing.T) {
	srv := NewServer(":0", &mockHandler{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeStatus(t, rec))
}

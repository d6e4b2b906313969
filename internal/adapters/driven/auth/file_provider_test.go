package auth

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/nimbus-labs/driveingest/internal/core/domain"
)

const testSecrets = `{
	"installed": {
		"client_id": "id.apps.googleusercontent.com",
		"client_secret": "secret",
		"redirect_uris": ["http://localhost"],
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token"
	}
}`

func writeFixtures(t *testing.T, token *oauth2.Token) (credPath, tokenPath string) {
	t.Helper()
	dir := t.TempDir()
	credPath = filepath.Join(dir, "credentials.json")
	tokenPath = filepath.Join(dir, "token.json")

	require.NoError(t, os.WriteFile(credPath, []byte(testSecrets), 0o600))

	data, err := json.Marshal(token)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tokenPath, data, 0o600))
	return credPath, tokenPath
}

func TestGetToken_ValidStoredToken(t *testing.T) {
	credPath, tokenPath := writeFixtures(t, &oauth2.Token{
		AccessToken: "stored-token",
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(time.Hour),
	})

	p, err := NewFileTokenProvider(context.Background(), credPath, tokenPath)
	require.NoError(t, err)

	got, err := p.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "stored-token", got)
}

func TestNewFileTokenProvider_MissingCredentials(t *testing.T) {
	_, tokenPath := writeFixtures(t, &oauth2.Token{AccessToken: "x"})

	_, err := NewFileTokenProvider(context.Background(), filepath.Join(t.TempDir(), "nope.json"), tokenPath)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestNewFileTokenProvider_MissingToken(t *testing.T) {
	credPath, _ := writeFixtures(t, &oauth2.Token{AccessToken: "x"})

	_, err := NewFileTokenProvider(context.Background(), credPath, filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestNewFileTokenProvider_MalformedToken(t *testing.T) {
	credPath, tokenPath := writeFixtures(t, &oauth2.Token{AccessToken: "x"})
	require.NoError(t, os.WriteFile(tokenPath, []byte("not json"), 0o600))

	_, err := NewFileTokenProvider(context.Background(), credPath, tokenPath)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

// Package auth provides token providers for authenticated API access.
//
// FileTokenProvider implements the installed-app OAuth flow's steady
// state: client secrets and a previously-obtained token live in local
// JSON files, and refresh happens transparently through oauth2's token
// source. Obtaining the first token (the interactive consent step) is out
// of scope for the service; it is done once with any standard OAuth
// helper and the result dropped next to the credentials.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/nimbus-labs/driveingest/internal/core/domain"
	"github.com/nimbus-labs/driveingest/internal/core/ports/driven"
	"github.com/nimbus-labs/driveingest/internal/logger"
)

// Ensure FileTokenProvider implements the interface.
var _ driven.TokenProvider = (*FileTokenProvider)(nil)

// FileTokenProvider serves access tokens backed by credential and token
// JSON files on disk. Refreshed tokens are written back so restarts keep
// working after the original access token expires.
type FileTokenProvider struct {
	mu        sync.Mutex
	source    oauth2.TokenSource
	tokenPath string
	lastToken string
}

// NewFileTokenProvider loads OAuth client secrets and a stored user token.
// Both files must exist; a missing token means the account was never
// authorised and no processing is possible.
func NewFileTokenProvider(ctx context.Context, credentialsPath, tokenPath string, scopes ...string) (*FileTokenProvider, error) {
	secrets, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read client secrets: %v", domain.ErrAuthRequired, err)
	}

	cfg, err := google.ConfigFromJSON(secrets, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: parse client secrets: %v", domain.ErrAuthRequired, err)
	}

	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read token file: %v", domain.ErrAuthRequired, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("%w: parse token file: %v", domain.ErrAuthRequired, err)
	}

	return &FileTokenProvider{
		source:    cfg.TokenSource(ctx, &token),
		tokenPath: tokenPath,
		lastToken: token.AccessToken,
	}, nil
}

// GetToken returns a valid access token, refreshing through the oauth2
// source when expired. A refreshed token is persisted best-effort.
func (p *FileTokenProvider) GetToken(_ context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	token, err := p.source.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAuthRequired, err)
	}

	if token.AccessToken != p.lastToken {
		p.lastToken = token.AccessToken
		p.persist(token)
	}
	return token.AccessToken, nil
}

// persist writes the refreshed token back to disk. Failure is logged but
// not fatal: the in-memory source keeps working until the next restart.
func (p *FileTokenProvider) persist(token *oauth2.Token) {
	data, err := json.Marshal(token)
	if err != nil {
		logger.Warn("marshal refreshed token failed: %v", err)
		return
	}
	if err := os.WriteFile(p.tokenPath, data, 0o600); err != nil {
		logger.Warn("persist refreshed token failed: %v", err)
	}
}

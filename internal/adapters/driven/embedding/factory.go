// Package embedding selects an embedding service implementation from
// configuration.
package embedding

import (
	"fmt"

	cfgfile "github.com/nimbus-labs/driveingest/internal/adapters/driven/config/file"
	"github.com/nimbus-labs/driveingest/internal/adapters/driven/embedding/ollama"
	"github.com/nimbus-labs/driveingest/internal/adapters/driven/embedding/openai"
	"github.com/nimbus-labs/driveingest/internal/core/ports/driven"
)

// New creates the embedding service named by the configuration.
func New(cfg cfgfile.EmbeddingConfig) (driven.EmbeddingService, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewEmbeddingService(openai.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		})
	case "ollama":
		return ollama.NewEmbeddingService(ollama.Config{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		}), nil
	default:
		return nil, fmt.Errorf("embedding: unknown provider %q", cfg.Provider)
	}
}

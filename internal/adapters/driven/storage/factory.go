// Package storage selects a vector store implementation from
// configuration.
package storage

import (
	"fmt"

	cfgfile "github.com/nimbus-labs/driveingest/internal/adapters/driven/config/file"
	"github.com/nimbus-labs/driveingest/internal/adapters/driven/storage/postgres"
	"github.com/nimbus-labs/driveingest/internal/adapters/driven/storage/supabase"
	"github.com/nimbus-labs/driveingest/internal/core/ports/driven"
)

// New creates the vector store named by the configuration.
func New(cfg cfgfile.StoreConfig) (driven.VectorStore, error) {
	switch cfg.Driver {
	case "supabase":
		return supabase.NewStore(supabase.Config{
			URL:   cfg.SupabaseURL,
			Key:   cfg.SupabaseKey,
			Table: cfg.Table,
		})
	case "postgres":
		return postgres.NewStore(postgres.Config{
			DSN:   cfg.PostgresDSN,
			Table: cfg.Table,
		})
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}

// Package file loads service configuration from a TOML file, with secrets
// overlaid from the environment (optionally seeded from a .env file).
package file

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config is the full service configuration.
type Config struct {
	// Listen is the webhook server bind address.
	Listen string `toml:"listen"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// CredentialsPath and TokenPath locate the OAuth client secrets and
	// the stored user token.
	CredentialsPath string `toml:"credentials_path"`
	TokenPath       string `toml:"token_path"`

	// CursorPath locates the change-feed cursor file.
	CursorPath string `toml:"cursor_path"`

	// WatchFolderID restricts ingestion to descendants of one folder.
	// Empty disables the ancestry filter.
	WatchFolderID string `toml:"watch_folder_id"`

	Identity   IdentityConfig   `toml:"identity"`
	Artifacts  ArtifactsConfig  `toml:"artifacts"`
	Embedding  EmbeddingConfig  `toml:"embedding"`
	Store      StoreConfig      `toml:"store"`
	DeadLetter DeadLetterConfig `toml:"dead_letter"`
}

// IdentityConfig attributes documents ingested through the change feed,
// where the notification carries no user. The direct-body endpoint uses
// the user from its payload instead.
type IdentityConfig struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// ArtifactsConfig controls the optional per-file extracted-text artifacts.
type ArtifactsConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// EmbeddingConfig selects and configures the embedding provider.
type EmbeddingConfig struct {
	// Provider is "openai" or "ollama".
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	BaseURL  string `toml:"base_url"`
	// APIKey comes from the OPENAI_API_KEY environment variable, never
	// from the config file.
	APIKey string `toml:"-"`
}

// StoreConfig selects and configures the vector store.
type StoreConfig struct {
	// Driver is "supabase" or "postgres".
	Driver string `toml:"driver"`
	// Table is the destination table name.
	Table string `toml:"table"`
	// SupabaseURL is the project REST base URL.
	SupabaseURL string `toml:"supabase_url"`
	// SupabaseKey comes from SUPABASE_KEY, never from the config file.
	SupabaseKey string `toml:"-"`
	// PostgresDSN comes from POSTGRES_DSN, never from the config file.
	PostgresDSN string `toml:"-"`
}

// DeadLetterConfig locates the dead-letter database.
type DeadLetterConfig struct {
	Path string `toml:"path"`
}

// Defaults match the layout the bootstrap command produces.
const (
	DefaultListen     = ":8080"
	DefaultCursorPath = "state/cursor"
	DefaultDeadLetter = "state/deadletters.db"
)

// Load reads configuration from path. A .env file beside the working
// directory is loaded first, best-effort, so secrets can live outside the
// TOML file.
func Load(path string) (*Config, error) {
	// Ignore a missing .env; the variables may come from the real
	// environment in production.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.CredentialsPath == "" {
		c.CredentialsPath = "credentials.json"
	}
	if c.TokenPath == "" {
		c.TokenPath = "token.json"
	}
	if c.CursorPath == "" {
		c.CursorPath = DefaultCursorPath
	}
	if c.Identity.Name == "" {
		c.Identity.Name = "drive-ingest"
	}
	if c.Identity.Email == "" {
		c.Identity.Email = "drive-ingest@localhost"
	}
	if c.Embedding.Provider == "" {
		c.Embedding.Provider = "openai"
	}
	if c.Store.Driver == "" {
		c.Store.Driver = "supabase"
	}
	if c.Store.Table == "" {
		c.Store.Table = "documents"
	}
	if c.DeadLetter.Path == "" {
		c.DeadLetter.Path = DefaultDeadLetter
	}
	if c.Artifacts.Enabled && c.Artifacts.Dir == "" {
		c.Artifacts.Dir = "state/artifacts"
	}
}

func (c *Config) applyEnv() {
	c.Embedding.APIKey = os.Getenv("OPENAI_API_KEY")
	c.Store.SupabaseKey = os.Getenv("SUPABASE_KEY")
	c.Store.PostgresDSN = os.Getenv("POSTGRES_DSN")
	if c.Store.SupabaseURL == "" {
		c.Store.SupabaseURL = os.Getenv("SUPABASE_URL")
	}
}

func (c *Config) validate() error {
	switch c.Embedding.Provider {
	case "openai", "ollama":
	default:
		return fmt.Errorf("config: unknown embedding provider %q", c.Embedding.Provider)
	}
	switch c.Store.Driver {
	case "supabase", "postgres":
	default:
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	return nil
}

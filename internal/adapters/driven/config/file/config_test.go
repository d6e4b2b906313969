package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, DefaultListen, cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "credentials.json", cfg.CredentialsPath)
	assert.Equal(t, "token.json", cfg.TokenPath)
	assert.Equal(t, DefaultCursorPath, cfg.CursorPath)
	assert.Equal(t, "openai", cfg.Embedding.Provider)
	assert.Equal(t, "supabase", cfg.Store.Driver)
	assert.Equal(t, "documents", cfg.Store.Table)
	assert.Equal(t, DefaultDeadLetter, cfg.DeadLetter.Path)
	assert.Equal(t, "drive-ingest", cfg.Identity.Name)
	assert.Equal(t, "drive-ingest@localhost", cfg.Identity.Email)
	assert.Empty(t, cfg.WatchFolderID)
}

func TestLoad_FullFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
listen = ":9090"
log_level = "debug"
watch_folder_id = "folder42"
cursor_path = "/var/lib/ingest/cursor"

[artifacts]
enabled = true

[embedding]
provider = "ollama"
model = "nomic-embed-text"
base_url = "http://localhost:11434"

[store]
driver = "postgres"
table = "docs"
`))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "folder42", cfg.WatchFolderID)
	assert.Equal(t, "/var/lib/ingest/cursor", cfg.CursorPath)
	assert.True(t, cfg.Artifacts.Enabled)
	assert.Equal(t, "state/artifacts", cfg.Artifacts.Dir)
	assert.Equal(t, "ollama", cfg.Embedding.Provider)
	assert.Equal(t, "nomic-embed-text", cfg.Embedding.Model)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "docs", cfg.Store.Table)
}

func TestLoad_SecretsFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SUPABASE_KEY", "sb-test")
	t.Setenv("SUPABASE_URL", "https://proj.supabase.co")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.Embedding.APIKey)
	assert.Equal(t, "sb-test", cfg.Store.SupabaseKey)
	assert.Equal(t, "https://proj.supabase.co", cfg.Store.SupabaseURL)
}

func TestLoad_UnknownProvider(t *testing.T) {
	_, err := Load(writeConfig(t, "[embedding]\nprovider = \"acme\"\n"))
	assert.Error(t, err)
}

func TestLoad_UnknownStoreDriver(t *testing.T) {
	_, err := Load(writeConfig(t, "[store]\ndriver = \"oracle\"\n"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

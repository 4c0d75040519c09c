package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isha3007/Gov-chatbot/internal/core/domain"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "chroma", cfg.StoreDir)
	assert.Equal(t, "websites.txt", cfg.WebsitesFile)
	assert.Equal(t, 800, cfg.ChunkSize)
	assert.Equal(t, 80, cfg.ChunkOverlap)
	assert.Equal(t, 5, cfg.TopK)
	assert.Equal(t, "hash", cfg.Dedup)
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout())
	assert.Equal(t, 1*time.Second, cfg.FetchDelay())
	assert.Equal(t, "ollama", cfg.Embedding.Provider)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
data_dir = "docs"
chunk_size = 1000
dedup = "id"

[embedding]
provider = "openai"
model = "text-embedding-3-small"
api_key_env = "MY_KEY"

[llm]
provider = "openai"
model = "gpt-4o-mini"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Overridden values.
	assert.Equal(t, "docs", cfg.DataDir)
	assert.Equal(t, 1000, cfg.ChunkSize)
	assert.Equal(t, "id", cfg.Dedup)
	assert.Equal(t, "openai", cfg.Embedding.Provider)
	assert.Equal(t, "MY_KEY", cfg.Embedding.APIKeyEnv)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)

	// Untouched values keep their defaults.
	assert.Equal(t, "chroma", cfg.StoreDir)
	assert.Equal(t, 80, cfg.ChunkOverlap)
	assert.Equal(t, 5, cfg.TopK)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestConfig_DedupStrategy(t *testing.T) {
	cfg := Default()

	strategy, err := cfg.DedupStrategy()
	require.NoError(t, err)
	assert.Equal(t, domain.DedupByHash, strategy)

	cfg.Dedup = "id"
	strategy, err = cfg.DedupStrategy()
	require.NoError(t, err)
	assert.Equal(t, domain.DedupByID, strategy)

	cfg.Dedup = "bogus"
	_, err = cfg.DedupStrategy()
	require.Error(t, err)
}

func TestConfig_SettingsResolveAPIKeyFromEnv(t *testing.T) {
	cfg := Default()
	cfg.Embedding.Provider = "openai"
	cfg.Embedding.APIKeyEnv = "GOVCHAT_TEST_KEY"
	cfg.LLM.Provider = "openai"
	cfg.LLM.APIKeyEnv = "GOVCHAT_TEST_KEY"

	t.Setenv("GOVCHAT_TEST_KEY", "sk-test")

	embed := cfg.EmbeddingSettings()
	assert.Equal(t, domain.AIProviderOpenAI, embed.Provider)
	assert.Equal(t, "sk-test", embed.APIKey)

	llm := cfg.LLMSettings()
	assert.Equal(t, "sk-test", llm.APIKey)
}

func TestConfig_SettingsDefaultAPIKeyEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("OPENAI_API_KEY", "sk-default")

	assert.Equal(t, "sk-default", cfg.EmbeddingSettings().APIKey)
}

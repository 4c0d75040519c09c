// Package config loads the application configuration from a TOML file.
//
// A missing config file is not an error: the pipeline runs with defaults
// so that `govchat ingest` works out of the box against a local Ollama.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/Isha3007/Gov-chatbot/internal/core/domain"
)

// Default configuration values.
const (
	DefaultDataDir      = "data"
	DefaultStoreDir     = "chroma"
	DefaultWebsitesFile = "websites.txt"
	DefaultChunkSize    = 800
	DefaultChunkOverlap = 80
	DefaultTopK         = 5
	DefaultFetchTimeout = 15
	DefaultFetchDelay   = 1
	DefaultAPIKeyEnv    = "OPENAI_API_KEY"
)

// Config is the application configuration.
type Config struct {
	// DataDir is the directory scanned for PDF documents.
	DataDir string `toml:"data_dir"`

	// StoreDir is the directory holding the persistent chunk store.
	StoreDir string `toml:"store_dir"`

	// WebsitesFile lists URLs to scrape, one per line.
	WebsitesFile string `toml:"websites_file"`

	// ChunkSize is the maximum chunk length in characters.
	ChunkSize int `toml:"chunk_size"`

	// ChunkOverlap is the number of trailing characters carried into the
	// next chunk.
	ChunkOverlap int `toml:"chunk_overlap"`

	// TopK is the number of chunks retrieved per query.
	TopK int `toml:"top_k"`

	// Dedup selects the ingestion dedup strategy ("hash" or "id").
	Dedup string `toml:"dedup"`

	// FetchTimeoutSeconds bounds each website fetch.
	FetchTimeoutSeconds int `toml:"fetch_timeout_seconds"`

	// FetchDelaySeconds is the fixed spacing between website fetches.
	FetchDelaySeconds int `toml:"fetch_delay_seconds"`

	Embedding Provider `toml:"embedding"`
	LLM       Provider `toml:"llm"`
}

// Provider configures one AI service provider. API keys are never stored
// in the config file; APIKeyEnv names the environment variable to read.
type Provider struct {
	Provider  string `toml:"provider"`
	Model     string `toml:"model"`
	BaseURL   string `toml:"base_url"`
	APIKeyEnv string `toml:"api_key_env"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		DataDir:             DefaultDataDir,
		StoreDir:            DefaultStoreDir,
		WebsitesFile:        DefaultWebsitesFile,
		ChunkSize:           DefaultChunkSize,
		ChunkOverlap:        DefaultChunkOverlap,
		TopK:                DefaultTopK,
		Dedup:               string(domain.DedupByHash),
		FetchTimeoutSeconds: DefaultFetchTimeout,
		FetchDelaySeconds:   DefaultFetchDelay,
		Embedding: Provider{
			Provider: string(domain.AIProviderOllama),
		},
		LLM: Provider{
			Provider: string(domain.AIProviderOllama),
		},
	}
}

// Load reads configuration from path, overlaying values onto the defaults.
// A missing file returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// FetchTimeout returns the website fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// FetchDelay returns the website fetch spacing as a duration.
func (c *Config) FetchDelay() time.Duration {
	return time.Duration(c.FetchDelaySeconds) * time.Second
}

// DedupStrategy parses the configured dedup strategy.
func (c *Config) DedupStrategy() (domain.DedupStrategy, error) {
	return domain.ParseDedupStrategy(c.Dedup)
}

// EmbeddingSettings resolves the embedding provider settings, reading the
// API key from the configured environment variable.
func (c *Config) EmbeddingSettings() *domain.EmbeddingSettings {
	return &domain.EmbeddingSettings{
		Provider: domain.AIProvider(c.Embedding.Provider),
		Model:    c.Embedding.Model,
		BaseURL:  c.Embedding.BaseURL,
		APIKey:   apiKeyFromEnv(c.Embedding.APIKeyEnv),
	}
}

// LLMSettings resolves the LLM provider settings, reading the API key from
// the configured environment variable.
func (c *Config) LLMSettings() *domain.LLMSettings {
	return &domain.LLMSettings{
		Provider: domain.AIProvider(c.LLM.Provider),
		Model:    c.LLM.Model,
		BaseURL:  c.LLM.BaseURL,
		APIKey:   apiKeyFromEnv(c.LLM.APIKeyEnv),
	}
}

func apiKeyFromEnv(name string) string {
	if name == "" {
		name = DefaultAPIKeyEnv
	}
	return os.Getenv(name)
}

package domain

// AIProvider identifies an AI service provider.
type AIProvider string

// Supported AI providers.
const (
	AIProviderOllama AIProvider = "ollama"
	AIProviderOpenAI AIProvider = "openai"
)

// EmbeddingSettings holds configuration for an embedding provider.
type EmbeddingSettings struct {
	Provider AIProvider
	Model    string
	BaseURL  string
	APIKey   string
}

// IsConfigured reports whether a provider has been selected.
func (s *EmbeddingSettings) IsConfigured() bool {
	return s != nil && s.Provider != ""
}

// LLMSettings holds configuration for an LLM provider.
type LLMSettings struct {
	Provider AIProvider
	Model    string
	BaseURL  string
	APIKey   string
}

// IsConfigured reports whether a provider has been selected.
func (s *LLMSettings) IsConfigured() bool {
	return s != nil && s.Provider != ""
}

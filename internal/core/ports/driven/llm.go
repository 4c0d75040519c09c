package driven

import "context"

// LLMService produces the grounded answer text.
//
// Implementations may include:
//   - OpenAI (gpt-4o-mini and compatible APIs)
//   - Ollama (local models)
type LLMService interface {
	// Generate produces a text completion from a rendered prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	// Zero means the provider default.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}

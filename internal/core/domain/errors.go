package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured or unreachable. Neither ingestion nor retrieval can
	// proceed without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrLLMUnavailable indicates the language model service is not
	// configured or unreachable. An answer cannot be produced without it.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrUnsupportedProvider indicates an unknown embedding or LLM
	// provider name in the configuration.
	ErrUnsupportedProvider = errors.New("unsupported provider")
)

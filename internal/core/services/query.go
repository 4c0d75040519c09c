package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Isha3007/Gov-chatbot/internal/core/domain"
	"github.com/Isha3007/Gov-chatbot/internal/core/ports/driven"
	"github.com/Isha3007/Gov-chatbot/internal/core/ports/driving"
	"github.com/Isha3007/Gov-chatbot/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.Answerer = (*QueryService)(nil)

// DefaultTopK is the number of chunks retrieved when the caller does not
// specify one.
const DefaultTopK = 5

// promptTemplate frames the retrieved context so the model answers from it
// rather than from its own knowledge.
const promptTemplate = `Answer the question based only on the following context:

%s

---

Answer the question based on the above context: %s`

// contextSeparator joins retrieved chunks inside the prompt.
const contextSeparator = "\n\n---\n\n"

// QueryService answers questions using retrieval-augmented generation:
// the question is embedded, the most similar stored chunks are retrieved,
// and the LLM answers from that context alone.
type QueryService struct {
	embedder driven.EmbeddingService
	store    driven.ChunkStore
	llm      driven.LLMService
}

// NewQueryService creates a new query service.
func NewQueryService(embedder driven.EmbeddingService, store driven.ChunkStore, llm driven.LLMService) *QueryService {
	return &QueryService{
		embedder: embedder,
		store:    store,
		llm:      llm,
	}
}

// Answer answers a question from the stored document chunks. If k is not
// positive, DefaultTopK is used.
func (s *QueryService) Answer(ctx context.Context, question string, k int) (*driving.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is empty", domain.ErrInvalidInput)
	}
	if k <= 0 {
		k = DefaultTopK
	}

	// 1. Embed the question.
	queryVec, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}

	// 2. Retrieve the most similar chunks.
	results, err := s.store.Search(ctx, queryVec, k)
	if err != nil {
		return nil, fmt.Errorf("search chunks: %w", err)
	}
	logger.Debug("Retrieved %d chunks for question", len(results))

	// 3. Assemble the prompt from the retrieved context.
	parts := make([]string, len(results))
	sources := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.Chunk.Content
		sources[i] = filepath.Base(r.Chunk.Source)
	}
	prompt := fmt.Sprintf(promptTemplate, strings.Join(parts, contextSeparator), question)

	// 4. Generate the answer.
	text, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	return &driving.Answer{
		Text:    text,
		Sources: sources,
		Results: results,
	}, nil
}

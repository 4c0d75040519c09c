package driving

import (
	"context"

	"github.com/Isha3007/Gov-chatbot/internal/core/domain"
)

// Answerer answers a free-text question grounded in retrieved chunks.
type Answerer interface {
	// Answer retrieves the k most relevant chunks (k <= 0 selects the
	// default), renders them into the prompt and invokes the language
	// model.
	Answer(ctx context.Context, question string, k int) (*Answer, error)
}

// Answer is the result of one grounded query.
type Answer struct {
	// Text is the language model's answer.
	Text string

	// Sources lists a human-readable label (file name portion of each
	// chunk's source) per retrieved chunk, in retrieval order. Labels
	// are not deduplicated.
	Sources []string

	// Results are the retrieved chunks that grounded the answer.
	Results []domain.RetrievedChunk
}

package driven

import (
	"context"

	"github.com/Isha3007/Gov-chatbot/internal/core/domain"
)

// ChunkStore is the persisted vector index of identified chunks.
// Backed by SQLite on a durable path; it survives process restarts.
//
// The store is mutated only by Upsert. Rows are never deleted by the
// pipeline; wiping the store is a CLI-level operation that removes the
// whole directory before the store is opened.
type ChunkStore interface {
	// Inventory scans all persisted chunk IDs and content hashes.
	// An empty or freshly created store returns an empty inventory.
	Inventory(ctx context.Context) (*domain.StoreInventory, error)

	// Upsert inserts the chunks, keyed by chunk ID. An existing row
	// with the same ID is replaced, which makes repeated ingestion
	// idempotent at the storage layer under either dedup strategy.
	Upsert(ctx context.Context, chunks []domain.Chunk) error

	// Search returns up to k chunks nearest the query embedding, in
	// non-increasing relevance order. An empty store returns an empty
	// slice, not an error. Fewer than k stored chunks return them all.
	Search(ctx context.Context, embedding []float32, k int) ([]domain.RetrievedChunk, error)

	// Count returns the number of persisted chunks.
	Count(ctx context.Context) (int, error)

	// Close releases the underlying database handle.
	Close() error
}

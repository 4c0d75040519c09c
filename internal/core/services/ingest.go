// Package services contains the core application services that orchestrate
// the ingestion and query pipelines over the driven ports.
package services

import (
	"context"
	"fmt"

	"github.com/Isha3007/Gov-chatbot/internal/core/domain"
	"github.com/Isha3007/Gov-chatbot/internal/core/ports/driven"
	"github.com/Isha3007/Gov-chatbot/internal/core/ports/driving"
	"github.com/Isha3007/Gov-chatbot/internal/identity"
	"github.com/Isha3007/Gov-chatbot/internal/logger"
	"github.com/Isha3007/Gov-chatbot/internal/splitter"
)

// Ensure IngestService implements the interface.
var _ driving.Ingestor = (*IngestService)(nil)

// IngestService coordinates document loading, chunking, deduplication and
// storage. Each run is a delta sync: only chunks not already present in the
// store are embedded and written.
type IngestService struct {
	loaders  []driven.DocumentLoader
	splitter *splitter.Splitter
	embedder driven.EmbeddingService
	store    driven.ChunkStore
	strategy domain.DedupStrategy
}

// NewIngestService creates a new ingest service.
func NewIngestService(
	loaders []driven.DocumentLoader,
	split *splitter.Splitter,
	embedder driven.EmbeddingService,
	store driven.ChunkStore,
	strategy domain.DedupStrategy,
) *IngestService {
	if strategy == "" {
		strategy = domain.DedupByHash
	}
	return &IngestService{
		loaders:  loaders,
		splitter: split,
		embedder: embedder,
		store:    store,
		strategy: strategy,
	}
}

// Ingest runs one full ingestion pass and returns a report of what happened.
func (s *IngestService) Ingest(ctx context.Context) (*driving.IngestReport, error) {
	// 1. Load documents from all sources. A failing source is logged and
	// skipped so one bad loader cannot abort the whole run.
	var docs []domain.Document
	for _, loader := range s.loaders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		loaded, err := loader.Load(ctx)
		if err != nil {
			// Always visible: a silently skipped source would look like
			// an empty one.
			logger.Error("Loader %s failed: %v", loader.Name(), err)
			continue
		}
		logger.Debug("Loader %s produced %d documents", loader.Name(), len(loaded))
		docs = append(docs, loaded...)
	}

	report := &driving.IngestReport{Documents: len(docs)}
	if len(docs) == 0 {
		logger.Info("No documents found, nothing to ingest")
		return report, nil
	}

	// 2. Split documents into chunks and assign positional IDs and
	// content hashes.
	chunks := s.splitter.SplitDocuments(docs)
	identity.Annotate(chunks)
	report.Chunks = len(chunks)

	// 3. Compare against the store inventory to find what is new.
	inventory, err := s.store.Inventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("read store inventory: %w", err)
	}

	fresh := selectNew(chunks, inventory, s.strategy)
	report.Existing = len(chunks) - len(fresh)
	report.Inserted = len(fresh)

	if len(fresh) == 0 {
		logger.Info("All %d chunks already stored, nothing to add", len(chunks))
		return report, nil
	}
	logger.Info("Adding %d new chunks (%d already stored)", len(fresh), report.Existing)

	// 4. Embed the new chunks in one batch.
	texts := make([]string, len(fresh))
	for i := range fresh {
		texts[i] = fresh[i].Content
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed chunks: %w", err)
	}
	if len(embeddings) != len(fresh) {
		return nil, fmt.Errorf("embed chunks: got %d embeddings for %d chunks", len(embeddings), len(fresh))
	}
	for i := range fresh {
		fresh[i].Embedding = embeddings[i]
	}

	// 5. Persist. Upsert is keyed by chunk ID, so re-ingesting changed
	// content replaces the stale row rather than duplicating it.
	if err := s.store.Upsert(ctx, fresh); err != nil {
		return nil, fmt.Errorf("store chunks: %w", err)
	}

	return report, nil
}

// selectNew filters chunks down to those not already present in the store,
// according to the dedup strategy.
func selectNew(chunks []domain.Chunk, inv *domain.StoreInventory, strategy domain.DedupStrategy) []domain.Chunk {
	var fresh []domain.Chunk
	for _, c := range chunks {
		switch strategy {
		case domain.DedupByID:
			if inv.HasID(c.ID) {
				continue
			}
		default:
			if inv.HasHash(c.SHA256) {
				continue
			}
		}
		fresh = append(fresh, c)
	}
	return fresh
}

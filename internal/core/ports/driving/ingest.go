package driving

import "context"

// Ingestor runs one ingestion batch: load every source, split, identify,
// diff against the persisted store and insert the delta.
type Ingestor interface {
	Ingest(ctx context.Context) (*IngestReport, error)
}

// IngestReport summarises one ingestion batch for the operator.
type IngestReport struct {
	// Documents is the number of documents the loaders produced.
	Documents int

	// Chunks is the number of chunks the batch was split into.
	Chunks int

	// Existing is the number of batch chunks already persisted.
	Existing int

	// Inserted is the number of chunks newly written to the store.
	Inserted int
}

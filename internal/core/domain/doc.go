// Package domain defines the core entities of the Gov-chatbot pipeline.
//
// This package is the innermost layer of the hexagonal architecture.
// It defines the fundamental types:
//
//   - Document: a unit of ingested content produced by a loader
//   - Chunk: a bounded, identified, content-hashed piece of a document
//   - RetrievedChunk: a chunk returned by similarity search with its score
//   - StoreInventory: the identifiers and hashes currently persisted
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

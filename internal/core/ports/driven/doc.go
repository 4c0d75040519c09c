// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them:
//
//   - DocumentLoader: produces documents from a source (PDF directory, web list)
//   - EmbeddingService: maps text to fixed-length vectors
//   - LLMService: generates the grounded answer text
//   - ChunkStore: the persisted vector index of identified chunks
//   - CommandRunner: executes external helper binaries (pdftotext)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or loader package
package driven

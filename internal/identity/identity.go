// Package identity assigns stable identifiers and content hashes to
// chunks.
//
// A chunk's identifier is positional: "{source}:{page}:{index}", where
// index is the chunk's zero-based position among siblings sharing the
// same (source, page) pair, in document order. The identifier is NOT
// derived from content. The content hash IS derived from content and
// nothing else. Keeping the two independent is what makes re-ingestion
// both idempotent (unchanged content keeps its ID and hash) and
// change-aware (changed content keeps its ID but gets a new hash).
package identity

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashText returns the SHA-256 digest of the exact text as a lowercase
// hex string. Pure function: identical content always yields the same
// digest regardless of source or position.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

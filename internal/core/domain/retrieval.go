package domain

// RetrievedChunk is a single similarity-search hit.
type RetrievedChunk struct {
	// Chunk is the matched chunk.
	Chunk Chunk

	// Score is the relevance score (cosine similarity, higher is closer).
	Score float64
}

// StoreInventory is the set of chunk identifiers and content hashes
// currently persisted. An empty or uninitialised store yields an
// inventory with empty sets, not an error.
type StoreInventory struct {
	IDs    map[string]struct{}
	Hashes map[string]struct{}
}

// NewStoreInventory returns an empty inventory.
func NewStoreInventory() *StoreInventory {
	return &StoreInventory{
		IDs:    make(map[string]struct{}),
		Hashes: make(map[string]struct{}),
	}
}

// Add records one persisted chunk's identifier and hash.
func (inv *StoreInventory) Add(id, hash string) {
	inv.IDs[id] = struct{}{}
	if hash != "" {
		inv.Hashes[hash] = struct{}{}
	}
}

// HasID reports whether the chunk ID is already persisted.
func (inv *StoreInventory) HasID(id string) bool {
	_, ok := inv.IDs[id]
	return ok
}

// HasHash reports whether the content hash is already persisted.
func (inv *StoreInventory) HasHash(hash string) bool {
	_, ok := inv.Hashes[hash]
	return ok
}

// Size returns the number of persisted chunk IDs.
func (inv *StoreInventory) Size() int {
	return len(inv.IDs)
}

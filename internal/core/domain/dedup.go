package domain

import "fmt"

// DedupStrategy selects how ingestion decides whether a chunk is new
// relative to the persisted store. The two strategies are mutually
// exclusive; the store's insert is an upsert by chunk ID under both.
type DedupStrategy string

const (
	// DedupByHash treats a chunk as new iff its content hash is absent
	// from the store. This detects content changes at stable positions;
	// the upsert-by-ID insert keeps a re-admitted hash at an existing
	// position from duplicating rows.
	DedupByHash DedupStrategy = "hash"

	// DedupByID treats a chunk as new iff its ID is absent from the
	// store. Known limitation: content changes at a stable position are
	// silently ignored, so a rescraped page can leave stale text behind.
	DedupByID DedupStrategy = "id"
)

// ParseDedupStrategy validates a configured strategy name.
func ParseDedupStrategy(s string) (DedupStrategy, error) {
	switch DedupStrategy(s) {
	case DedupByHash, DedupByID:
		return DedupStrategy(s), nil
	case "":
		return DedupByHash, nil
	default:
		return "", fmt.Errorf("%w: unknown dedup strategy %q", ErrInvalidInput, s)
	}
}

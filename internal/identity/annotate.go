package identity

import (
	"strconv"

	"github.com/Isha3007/Gov-chatbot/internal/core/domain"
)

// Annotate assigns each chunk its positional ID and content hash in a
// single pass and returns the same slice.
//
// The pass is an explicit fold over (lastPageKey, index): when a
// chunk's page key matches the previous chunk's, the running index
// increments; otherwise it resets to zero. Because the reset fires on
// every key change, chunks from multiple documents can flow through one
// pass without cross-contamination - a new source or a new page both
// start a fresh index run.
func Annotate(chunks []domain.Chunk) []domain.Chunk {
	lastPageKey := ""
	index := 0

	for i := range chunks {
		key := chunks[i].PageKey()
		if i > 0 && key == lastPageKey {
			index++
		} else {
			index = 0
		}

		chunks[i].Position = index
		chunks[i].ID = key + ":" + strconv.Itoa(index)
		chunks[i].SHA256 = HashText(chunks[i].Content)

		lastPageKey = key
	}

	return chunks
}

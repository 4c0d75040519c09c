package identity

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isha3007/Gov-chatbot/internal/core/domain"
	"github.com/Isha3007/Gov-chatbot/internal/splitter"
)

func makeChunks(spec ...[2]any) []domain.Chunk {
	chunks := make([]domain.Chunk, 0, len(spec))
	for i, s := range spec {
		chunks = append(chunks, domain.Chunk{
			Source:  s[0].(string),
			Page:    s[1].(int),
			Content: fmt.Sprintf("content %d", i),
		})
	}
	return chunks
}

func TestAnnotate_AssignsPositionalIDs(t *testing.T) {
	chunks := makeChunks(
		[2]any{"a.pdf", 0},
		[2]any{"a.pdf", 0},
		[2]any{"a.pdf", 1},
		[2]any{"b.pdf", 0},
	)

	Annotate(chunks)

	assert.Equal(t, "a.pdf:0:0", chunks[0].ID)
	assert.Equal(t, "a.pdf:0:1", chunks[1].ID)
	assert.Equal(t, "a.pdf:1:0", chunks[2].ID)
	assert.Equal(t, "b.pdf:0:0", chunks[3].ID)
}

func TestAnnotate_Idempotent(t *testing.T) {
	chunks := makeChunks(
		[2]any{"a.pdf", 0},
		[2]any{"a.pdf", 0},
		[2]any{"https://example.gov/page", 0},
	)

	first := Annotate(chunks)
	ids := make([]string, len(first))
	hashes := make([]string, len(first))
	for i, c := range first {
		ids[i] = c.ID
		hashes[i] = c.SHA256
	}

	second := Annotate(chunks)
	for i, c := range second {
		assert.Equal(t, ids[i], c.ID)
		assert.Equal(t, hashes[i], c.SHA256)
	}
}

func TestAnnotate_ContiguousIndexWithinPage(t *testing.T) {
	var spec [][2]any
	for i := 0; i < 7; i++ {
		spec = append(spec, [2]any{"report.pdf", 3})
	}
	chunks := makeChunks(spec...)

	Annotate(chunks)

	for i, c := range chunks {
		assert.Equal(t, i, c.Position, "index run must be contiguous and gap-free")
		assert.Equal(t, fmt.Sprintf("report.pdf:3:%d", i), c.ID)
	}
}

func TestAnnotate_ResetsAcrossDocumentBoundaries(t *testing.T) {
	chunks := makeChunks(
		[2]any{"a.pdf", 5},
		[2]any{"a.pdf", 5},
		[2]any{"b.pdf", 5},
		[2]any{"a.pdf", 5},
	)

	Annotate(chunks)

	// Returning to a previously seen key still resets: the fold only
	// remembers the immediately preceding key.
	assert.Equal(t, "a.pdf:5:0", chunks[0].ID)
	assert.Equal(t, "a.pdf:5:1", chunks[1].ID)
	assert.Equal(t, "b.pdf:5:0", chunks[2].ID)
	assert.Equal(t, "a.pdf:5:0", chunks[3].ID)
}

func TestAnnotate_HashIndependentOfPosition(t *testing.T) {
	chunks := []domain.Chunk{
		{Source: "a.pdf", Page: 0, Content: "same text"},
		{Source: "b.pdf", Page: 9, Content: "same text"},
		{Source: "a.pdf", Page: 0, Content: "different text"},
	}

	Annotate(chunks)

	assert.Equal(t, chunks[0].SHA256, chunks[1].SHA256)
	assert.NotEqual(t, chunks[0].SHA256, chunks[2].SHA256)
}

func TestHashText(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, HashText("hello"), HashText("hello"))
	})

	t.Run("distinct inputs differ", func(t *testing.T) {
		assert.NotEqual(t, HashText("hello"), HashText("hello "))
	})

	t.Run("lowercase hex of fixed length", func(t *testing.T) {
		h := HashText("anything")
		assert.Len(t, h, 64)
		assert.Equal(t, strings.ToLower(h), h)
	})

	t.Run("known vector", func(t *testing.T) {
		// sha256 of the empty string.
		assert.Equal(t,
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			HashText(""))
	})
}

// TestSplitAndAnnotate_PDFScenario exercises the ingestion front half:
// one PDF page long enough for exactly three windows at 800/80 yields
// a.pdf:0:0 through a.pdf:0:2.
func TestSplitAndAnnotate_PDFScenario(t *testing.T) {
	paragraphs := []string{
		strings.Repeat("a", 700),
		strings.Repeat("b", 700),
		strings.Repeat("c", 700),
	}
	doc := domain.Document{
		ID:         "doc-1",
		Source:     "a.pdf",
		SourceType: domain.SourcePDF,
		Page:       0,
		Content:    strings.Join(paragraphs, "\n\n"),
	}

	s := splitter.New(splitter.WithChunkSize(800), splitter.WithOverlap(80))
	chunks := Annotate(s.SplitDocuments([]domain.Document{doc}))

	require.Len(t, chunks, 3)
	assert.Equal(t, "a.pdf:0:0", chunks[0].ID)
	assert.Equal(t, "a.pdf:0:1", chunks[1].ID)
	assert.Equal(t, "a.pdf:0:2", chunks[2].ID)
}

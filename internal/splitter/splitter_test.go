package splitter

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isha3007/Gov-chatbot/internal/core/domain"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		s := New()
		assert.Equal(t, DefaultChunkSize, s.ChunkSize())
		assert.Equal(t, DefaultChunkOverlap, s.Overlap())
	})

	t.Run("custom values", func(t *testing.T) {
		s := New(WithChunkSize(500), WithOverlap(100))
		assert.Equal(t, 500, s.ChunkSize())
		assert.Equal(t, 100, s.Overlap())
	})

	t.Run("overlap exceeding chunk size is reduced", func(t *testing.T) {
		s := New(WithChunkSize(100), WithOverlap(150))
		assert.Less(t, s.Overlap(), s.ChunkSize())
	})

	t.Run("non-positive options ignored", func(t *testing.T) {
		s := New(WithChunkSize(0), WithOverlap(-1))
		assert.Equal(t, DefaultChunkSize, s.ChunkSize())
		assert.Equal(t, DefaultChunkOverlap, s.Overlap())
	})
}

func TestSplit_ShortText(t *testing.T) {
	s := New()
	pieces := s.Split("short text")
	require.Len(t, pieces, 1)
	assert.Equal(t, "short text", pieces[0])
}

func TestSplit_EmptyText(t *testing.T) {
	s := New()
	assert.Nil(t, s.Split(""))
	assert.Nil(t, s.Split("   \n\n  "))
}

func TestSplit_PrefersParagraphBoundaries(t *testing.T) {
	p1 := strings.Repeat("a", 700)
	p2 := strings.Repeat("b", 700)
	p3 := strings.Repeat("c", 700)
	text := p1 + "\n\n" + p2 + "\n\n" + p3

	s := New()
	pieces := s.Split(text)

	require.Len(t, pieces, 3)
	assert.Equal(t, p1, pieces[0])
	assert.Equal(t, p2, pieces[1])
	assert.Equal(t, p3, pieces[2])
}

func TestSplit_NeverExceedsChunkSize(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 400; i++ {
		fmt.Fprintf(&b, "w%03d ", i)
	}

	s := New()
	pieces := s.Split(b.String())

	require.Greater(t, len(pieces), 1)
	for i, piece := range pieces {
		assert.LessOrEqual(t, len(piece), DefaultChunkSize, "piece %d too large", i)
	}
}

func TestSplit_OverlapBetweenAdjacentPieces(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 400; i++ {
		fmt.Fprintf(&b, "w%03d ", i)
	}

	s := New()
	pieces := s.Split(b.String())
	require.Greater(t, len(pieces), 1)

	// The second piece starts with words from the tail of the first.
	firstWordOfSecond := strings.Fields(pieces[1])[0]
	assert.Contains(t, pieces[0], firstWordOfSecond)

	tail := pieces[0][len(pieces[0])-len(firstWordOfSecond):]
	assert.NotEmpty(t, tail)
}

func TestSplit_HardCutWithoutBoundaries(t *testing.T) {
	text := strings.Repeat("x", 2000)

	s := New()
	pieces := s.Split(text)

	require.Greater(t, len(pieces), 1)
	for _, piece := range pieces {
		assert.LessOrEqual(t, len(piece), DefaultChunkSize)
	}

	// Hard-cut windows still overlap by the configured amount.
	assert.Equal(t, DefaultChunkSize, len(pieces[0]))
	total := 0
	for _, piece := range pieces {
		total += len(piece)
	}
	assert.Greater(t, total, len(text), "pieces should overlap")
}

func TestSplit_HardCutKeepsMultibyteRunesIntact(t *testing.T) {
	// No paragraph, line or space boundaries anywhere, so every window
	// comes from the hard-cut fallback.
	text := strings.Repeat("政", 2000)

	s := New()
	pieces := s.Split(text)

	require.Greater(t, len(pieces), 1)
	for i, piece := range pieces {
		assert.True(t, utf8.ValidString(piece), "piece %d is invalid UTF-8", i)
		assert.LessOrEqual(t, utf8.RuneCountInString(piece), DefaultChunkSize)
	}

	// Windows are measured in runes: a full window holds chunkSize runes.
	assert.Equal(t, DefaultChunkSize, utf8.RuneCountInString(pieces[0]))

	total := 0
	for _, piece := range pieces {
		total += utf8.RuneCountInString(piece)
	}
	assert.Greater(t, total, utf8.RuneCountInString(text), "pieces should overlap")
}

func TestSplitDocuments(t *testing.T) {
	doc := domain.Document{
		ID:         "doc-1",
		Source:     "data/a.pdf",
		SourceType: domain.SourcePDF,
		Page:       2,
		Content:    strings.Repeat("a", 700) + "\n\n" + strings.Repeat("b", 700),
	}

	s := New()
	chunks := s.SplitDocuments([]domain.Document{doc})

	require.Len(t, chunks, 2)
	for _, c := range chunks {
		assert.Equal(t, "doc-1", c.DocumentID)
		assert.Equal(t, "data/a.pdf", c.Source)
		assert.Equal(t, domain.SourcePDF, c.SourceType)
		assert.Equal(t, 2, c.Page)
		assert.Empty(t, c.ID, "identity pass assigns IDs, not the splitter")
	}
}

func TestSplitDocuments_EmptyContent(t *testing.T) {
	s := New()
	chunks := s.SplitDocuments([]domain.Document{{ID: "d", Content: ""}})
	assert.Empty(t, chunks)
}

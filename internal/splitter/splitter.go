// Package splitter turns document text into overlapping chunks.
//
// Splitting prefers natural boundaries: paragraph breaks first, then
// line breaks, then word breaks, before falling back to a hard cut.
// Adjacent chunks share a trailing/leading span of roughly the overlap
// size so context is not lost at chunk boundaries.
package splitter

import (
	"strings"

	"github.com/Isha3007/Gov-chatbot/internal/core/domain"
)

// DefaultChunkSize is the default window size in characters.
const DefaultChunkSize = 800

// DefaultChunkOverlap is the default overlap between adjacent chunks.
const DefaultChunkOverlap = 80

// defaultSeparators orders boundary preference from coarse to fine.
// The empty separator is the hard-cut fallback and always terminates
// the recursion.
var defaultSeparators = []string{"\n\n", "\n", " ", ""}

// Splitter splits text into boundary-respecting windows with overlap.
type Splitter struct {
	chunkSize  int
	overlap    int
	separators []string
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the window size in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between adjacent chunks in characters.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// New creates a splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		chunkSize:  DefaultChunkSize,
		overlap:    DefaultChunkOverlap,
		separators: defaultSeparators,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Overlap must leave room for the window to advance.
	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}

	return s
}

// ChunkSize returns the configured window size.
func (s *Splitter) ChunkSize() int { return s.chunkSize }

// Overlap returns the configured overlap.
func (s *Splitter) Overlap() int { return s.overlap }

// Split breaks text into pieces of at most the window size. A piece
// exceeds the window only when a single unbreakable unit does.
func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return s.split(text, s.separators)
}

// SplitDocuments splits each document's content and maps the pieces to
// chunks carrying the parent document's fields. Chunk order follows
// document traversal order, which the identity pass depends on.
func (s *Splitter) SplitDocuments(docs []domain.Document) []domain.Chunk {
	var chunks []domain.Chunk
	for _, doc := range docs {
		for _, piece := range s.Split(doc.Content) {
			chunks = append(chunks, domain.Chunk{
				DocumentID: doc.ID,
				Source:     doc.Source,
				SourceType: doc.SourceType,
				Page:       doc.Page,
				Title:      doc.Title,
				Content:    piece,
			})
		}
	}
	return chunks
}

// split recursively divides text at the coarsest separator present,
// then merges the parts back into windows.
func (s *Splitter) split(text string, separators []string) []string {
	if len(text) <= s.chunkSize {
		return []string{text}
	}

	sep := ""
	rest := []string{}
	for i, cand := range separators {
		if cand == "" || strings.Contains(text, cand) {
			sep = cand
			rest = separators[i+1:]
			break
		}
	}

	if sep == "" {
		return s.hardCut(text)
	}

	return s.merge(strings.Split(text, sep), sep, rest)
}

// merge packs parts into windows of at most chunkSize, keeping a tail
// of at most overlap characters when a window is emitted. Parts larger
// than the window are split again with the finer separators.
func (s *Splitter) merge(parts []string, sep string, rest []string) []string {
	var chunks []string
	var window []string
	winLen := 0
	sepLen := len(sep)

	emit := func() {
		if len(window) == 0 {
			return
		}
		piece := strings.TrimSpace(strings.Join(window, sep))
		if piece != "" {
			chunks = append(chunks, piece)
		}
	}

	for _, part := range parts {
		if part == "" {
			continue
		}

		if len(part) > s.chunkSize {
			// Atomic unit bigger than the window: flush what we have
			// and split the unit at a finer boundary.
			emit()
			window = nil
			winLen = 0
			chunks = append(chunks, s.split(part, rest)...)
			continue
		}

		if winLen > 0 && winLen+sepLen+len(part) > s.chunkSize {
			emit()
			// Retain at most overlap characters for continuity, and in
			// any case enough room for the incoming part.
			for len(window) > 0 && (winLen > s.overlap || winLen+sepLen+len(part) > s.chunkSize) {
				drop := len(window[0])
				if len(window) > 1 {
					drop += sepLen
				}
				window = window[1:]
				winLen -= drop
			}
		}

		if len(window) > 0 {
			winLen += sepLen
		}
		window = append(window, part)
		winLen += len(part)
	}

	emit()
	return chunks
}

// hardCut is the last resort: fixed windows advancing by size-overlap.
// Windows are measured in runes, never bytes, so multibyte text without
// natural boundaries is not cut mid-rune.
func (s *Splitter) hardCut(text string) []string {
	step := s.chunkSize - s.overlap
	if step <= 0 {
		step = s.chunkSize
	}

	runes := []rune(text)
	var out []string
	for start := 0; start < len(runes); start += step {
		end := start + s.chunkSize
		if end >= len(runes) {
			out = append(out, string(runes[start:]))
			break
		}
		out = append(out, string(runes[start:end]))
	}
	return out
}

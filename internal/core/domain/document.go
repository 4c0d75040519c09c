package domain

import "strconv"

// SourceType identifies the kind of source a document was loaded from.
type SourceType string

const (
	// SourcePDF marks documents extracted from a PDF file.
	SourcePDF SourceType = "pdf"

	// SourceWeb marks documents scraped from a web page.
	SourceWeb SourceType = "web"
)

// Document is a unit of ingested content. Loaders produce documents;
// the splitter consumes them. A document is immutable once produced.
type Document struct {
	// ID is the unique identifier assigned by the loader.
	ID string

	// Source is the original location (file path or URL).
	Source string

	// SourceType is the kind of source the document came from.
	SourceType SourceType

	// Page is the zero-based page number. Non-paginated sources use 0.
	Page int

	// Title is the human-readable title. Web documents fall back to
	// the URL host; PDF documents leave it empty.
	Title string

	// Content is the full extracted text of the page.
	Content string
}

// Chunk is a bounded piece of a document's content, the atomic unit
// stored and retrieved.
//
// The ID is positional ("source:page:index") while SHA256 is derived
// from the exact content. Re-ingesting an unchanged document yields
// identical IDs and identical hashes; a re-scraped page whose text
// changed yields the same IDs but different hashes.
type Chunk struct {
	// ID is the positional composite key "{source}:{page}:{index}".
	ID string

	// DocumentID links back to the parent Document.
	DocumentID string

	// Source is the parent document's location.
	Source string

	// SourceType is the parent document's source kind.
	SourceType SourceType

	// Page is the parent document's page number.
	Page int

	// Title is the parent document's title.
	Title string

	// Position is the zero-based index among chunks sharing the same
	// (source, page) pair, in document order.
	Position int

	// Content is the chunk text, at most the configured window size.
	Content string

	// SHA256 is the lowercase hex digest of Content, used for
	// content-addressed deduplication.
	SHA256 string

	// Embedding is the vector representation. Populated only for
	// chunks about to be inserted into the store.
	Embedding []float32
}

// PageKey returns the "{source}:{page}" composite that scopes the
// chunk's positional index.
func (c *Chunk) PageKey() string {
	return c.Source + ":" + strconv.Itoa(c.Page)
}

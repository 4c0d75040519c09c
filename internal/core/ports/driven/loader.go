package driven

import (
	"context"

	"github.com/Isha3007/Gov-chatbot/internal/core/domain"
)

// DocumentLoader produces documents from an external source.
//
// A loader isolates its own per-item failures: a single unreadable PDF
// or a URL returning a non-2xx status is logged and skipped inside the
// loader, not surfaced. Load returns an error only when the source as a
// whole cannot be consulted; the ingestion service treats that as zero
// documents from this loader and continues the batch.
type DocumentLoader interface {
	// Name identifies the loader in logs and reports.
	Name() string

	// Load produces all currently available documents. A missing data
	// directory or websites file is an explicit empty case: (nil, nil).
	Load(ctx context.Context) ([]domain.Document, error)
}

// CommandRunner executes an external command and returns its stdout.
// It exists so loaders that shell out (pdftotext) can be tested with a
// double instead of the real binary.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

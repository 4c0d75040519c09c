// Package pdf loads documents from a directory of PDF files.
//
// Text extraction shells out to pdftotext (poppler-utils), which emits
// a form feed between pages; each non-empty page becomes one document
// with its page number set. The runner is an injectable port so tests
// do not need the binary installed.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Isha3007/Gov-chatbot/internal/core/domain"
	"github.com/Isha3007/Gov-chatbot/internal/core/ports/driven"
	"github.com/Isha3007/Gov-chatbot/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// pageSeparator is the form feed pdftotext prints between pages.
const pageSeparator = "\f"

// Loader scans a directory for PDF files and extracts per-page text.
type Loader struct {
	dir    string
	runner driven.CommandRunner
}

// Option configures the loader.
type Option func(*Loader)

// WithRunner replaces the command runner. Used by tests.
func WithRunner(r driven.CommandRunner) Option {
	return func(l *Loader) {
		if r != nil {
			l.runner = r
		}
	}
}

// New creates a PDF directory loader.
func New(dir string, opts ...Option) *Loader {
	l := &Loader{
		dir:    dir,
		runner: execRunner{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Name identifies the loader in logs and reports.
func (l *Loader) Name() string { return "pdf" }

// Load produces one document per non-empty page of each PDF in the
// directory, in file name order. A missing directory is an explicit
// empty case. A file whose extraction fails is logged and skipped; the
// remaining files still load.
func (l *Loader) Load(ctx context.Context) ([]domain.Document, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("pdf directory %s does not exist", l.dir)
			return nil, nil
		}
		return nil, fmt.Errorf("read pdf directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var docs []domain.Document
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return docs, err
		}

		path := filepath.Join(l.dir, name)
		pages, err := l.extract(ctx, path)
		if err != nil {
			if errors.Is(err, exec.ErrNotFound) {
				logger.Error("pdftotext is not installed; skipping %s\n%s", path, InstallInstructions())
			} else {
				logger.Error("pdf extraction failed for %s: %v", path, err)
			}
			continue
		}

		for page, text := range pages {
			if strings.TrimSpace(text) == "" {
				continue
			}
			docs = append(docs, domain.Document{
				ID:         uuid.New().String(),
				Source:     path,
				SourceType: domain.SourcePDF,
				Page:       page,
				Content:    text,
			})
		}
		logger.Debug("loaded %s (%d pages)", path, len(pages))
	}

	return docs, nil
}

// extract runs pdftotext and splits its output into pages.
func (l *Loader) extract(ctx context.Context, path string) ([]string, error) {
	out, err := l.runner.Run(ctx, "pdftotext", path, "-")
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	return strings.Split(string(out), pageSeparator), nil
}

// InstallInstructions explains how to install the pdftotext dependency.
func InstallInstructions() string {
	return strings.Join([]string{
		"pdftotext is required for PDF ingestion:",
		"  macOS:         brew install poppler",
		"  Debian/Ubuntu: apt install poppler-utils",
		"  Fedora:        dnf install poppler-utils",
	}, "\n")
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return []byte(stdout.String()), nil
}

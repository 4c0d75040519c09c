// Package web loads documents by scraping a configured list of URLs.
//
// Fetches are polite: a fixed spacing between successive requests, a
// bounded timeout per request and an identifying User-Agent. A failed
// fetch or an empty page skips that URL only; the batch continues.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/Isha3007/Gov-chatbot/internal/core/domain"
	"github.com/Isha3007/Gov-chatbot/internal/core/ports/driven"
	"github.com/Isha3007/Gov-chatbot/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Default configuration values.
const (
	DefaultUserAgent  = "GovChatBot/1.0 (+https://github.com/Isha3007/Gov-chatbot)"
	DefaultTimeout    = 15 * time.Second
	DefaultFetchDelay = time.Second

	// maxBodySize caps how much of a response is read (8 MiB).
	maxBodySize = 8 << 20
)

// Loader scrapes the URLs listed in a websites file.
type Loader struct {
	listPath  string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

// Option configures the loader.
type Option func(*Loader)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.client.Timeout = d
		}
	}
}

// WithFetchDelay sets the fixed spacing between successive fetches.
func WithFetchDelay(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(l *Loader) {
		if ua != "" {
			l.userAgent = ua
		}
	}
}

// New creates a web loader reading URLs from listPath.
func New(listPath string, opts ...Option) *Loader {
	l := &Loader{
		listPath:  listPath,
		userAgent: DefaultUserAgent,
		client:    &http.Client{Timeout: DefaultTimeout},
		limiter:   rate.NewLimiter(rate.Every(DefaultFetchDelay), 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Name identifies the loader in logs and reports.
func (l *Loader) Name() string { return "web" }

// Load scrapes every listed URL into one document each (page 0). A
// missing websites file is an explicit empty case. Per-URL failures are
// logged and skipped.
func (l *Loader) Load(ctx context.Context) ([]domain.Document, error) {
	urls, err := ReadWebsites(l.listPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("websites file %s does not exist", l.listPath)
			return nil, nil
		}
		return nil, fmt.Errorf("read websites file: %w", err)
	}

	var docs []domain.Document
	for _, u := range urls {
		// Fixed spacing between successive fetches.
		if err := l.limiter.Wait(ctx); err != nil {
			return docs, err
		}

		page, err := l.fetch(ctx, u)
		if err != nil {
			logger.Error("scrape failed for %s: %v", u, err)
			continue
		}
		if strings.TrimSpace(page.text) == "" {
			logger.Debug("no text content at %s", u)
			continue
		}

		docs = append(docs, domain.Document{
			ID:         uuid.New().String(),
			Source:     u,
			SourceType: domain.SourceWeb,
			Page:       0,
			Title:      page.title,
			Content:    page.text,
		})
		logger.Debug("scraped %s (%d characters)", u, len(page.text))
	}

	return docs, nil
}

// scrapedPage is the cleaned result of one fetch.
type scrapedPage struct {
	text  string
	title string
}

// fetch performs one polite GET and converts the body to clean text.
func (l *Loader) fetch(ctx context.Context, pageURL string) (*scrapedPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	raw := string(body)
	return &scrapedPage{
		text:  htmlToText(raw),
		title: htmlTitle(raw, pageURL),
	}, nil
}

// ReadWebsites parses a newline-delimited URL list. Blank lines and
// lines starting with '#' are ignored; duplicate URLs are dropped so a
// repeated entry cannot produce colliding chunk IDs.
func ReadWebsites(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		urls = append(urls, line)
	}
	return urls, nil
}

// hostOf returns the host portion of a URL, or the URL itself when it
// cannot be parsed. Used as the title fallback.
func hostOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return pageURL
	}
	return u.Host
}

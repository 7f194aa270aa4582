// Package loader fetches sheet exports, falling back to local copies.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/ukaji3/expobook-go/pkg/booklet/models"
	"github.com/ukaji3/expobook-go/pkg/booklet/parser"
	"go.uber.org/zap"
)

// ErrNoSource indicates a source has neither a URL nor a fallback file.
var ErrNoSource = errors.New("no url or fallback configured")

// ErrUnknownSource indicates a StaticLoader has no table for a source.
var ErrUnknownSource = errors.New("unknown source")

// Source identifies one sheet export.
type Source struct {
	// Name labels the source in logs and errors.
	Name string
	// URL is the published CSV export.
	URL string
	// Fallback is a local CSV or XLSX copy read when the fetch fails.
	Fallback string
}

// Loader loads a sheet into a Table.
type Loader interface {
	Load(ctx context.Context, src Source) (*models.Table, error)
}

// Config configures an HTTPLoader.
type Config struct {
	// Timeout bounds a single fetch.
	Timeout time.Duration
	// NullTokens are cell texts read as missing. If nil, parser defaults apply.
	NullTokens []string
	// Offline skips fetching and reads fallback files directly.
	Offline bool
	// Console receives the user-facing warning lines. Defaults to os.Stdout.
	Console io.Writer
}

// HTTPLoader fetches CSV exports over HTTP with a single attempt.
type HTTPLoader struct {
	client  *resty.Client
	nulls   parser.NullSet
	offline bool
	console io.Writer
	logger  *zap.Logger
}

// NewHTTPLoader creates an HTTPLoader.
func NewHTTPLoader(cfg Config, logger *zap.Logger) *HTTPLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	console := cfg.Console
	if console == nil {
		console = os.Stdout
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0)

	return &HTTPLoader{
		client:  client,
		nulls:   parser.NewNullSet(cfg.NullTokens),
		offline: cfg.Offline,
		console: console,
		logger:  logger,
	}
}

// Load fetches src.URL and parses it as CSV. On failure it reports a warning
// and reads src.Fallback if one is set; otherwise the failure is returned.
func (l *HTTPLoader) Load(ctx context.Context, src Source) (*models.Table, error) {
	if l.offline || src.URL == "" {
		if src.Fallback == "" {
			return nil, fmt.Errorf("%s: %w", src.Name, ErrNoSource)
		}
		l.logger.Info("Reading local file",
			zap.String("source", src.Name),
			zap.String("path", src.Fallback),
		)
		return parser.ReadFile(src.Fallback, l.nulls)
	}

	table, err := l.fetch(ctx, src.URL)
	if err == nil {
		l.logger.Info("Fetched sheet",
			zap.String("source", src.Name),
			zap.Int("rows", table.Len()),
		)
		return table, nil
	}

	fmt.Fprintf(l.console, "Warning: Could not fetch %s (%v)\n", src.URL, err)
	l.logger.Warn("Sheet fetch failed",
		zap.String("source", src.Name),
		zap.String("url", src.URL),
		zap.Error(err),
	)
	if src.Fallback == "" {
		return nil, err
	}

	fmt.Fprintf(l.console, "  Loading from local file: %s\n", src.Fallback)
	return parser.ReadFile(src.Fallback, l.nulls)
}

func (l *HTTPLoader) fetch(ctx context.Context, url string) (*models.Table, error) {
	resp, err := l.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("unexpected status %s", resp.Status())
	}
	return parser.ParseCSV(bytes.NewReader(resp.Body()), l.nulls)
}

// StaticLoader serves preloaded tables by source name. Tables are returned
// as is; rows shorter than the header read as empty trailing cells.
type StaticLoader map[string]*models.Table

// Load returns the table registered under src.Name.
func (s StaticLoader) Load(_ context.Context, src Source) (*models.Table, error) {
	t, ok := s[src.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, src.Name)
	}
	return t, nil
}

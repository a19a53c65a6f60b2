// Package catalog fetches the sample catalog once at startup and turns it
// into normalized entries.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ytget/sample-gallery/internal/model"
)

//go:embed data/apps.json
var embeddedCatalog []byte

// EmbeddedSource selects the catalog compiled into the binary
const EmbeddedSource = "embedded"

// DefaultPath is the conventional location of the catalog next to the binary
const DefaultPath = "data/apps.json"

const (
	defaultHTTPTimeout = 30 * time.Second
	maxCatalogBytes    = 16 << 20
)

// Format is the encoding of a catalog document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Embedded returns a copy of the built-in catalog document
func Embedded() []byte {
	return bytes.Clone(embeddedCatalog)
}

// Loader reads and normalizes a catalog from a single source
type Loader struct {
	source     string
	client     *http.Client
	normalizer *model.Normalizer
	logger     *zap.Logger
}

// NewLoader creates a loader. The source is a file path, an http(s) URL or
// EmbeddedSource; an empty source selects the embedded catalog.
func NewLoader(source string, normalizer *model.Normalizer, logger *zap.Logger) *Loader {
	if source == "" {
		source = EmbeddedSource
	}
	if normalizer == nil {
		normalizer = model.NewNormalizer("")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		source:     source,
		client:     &http.Client{Timeout: defaultHTTPTimeout},
		normalizer: normalizer,
		logger:     logger,
	}
}

// WithHTTPClient replaces the client used for URL sources
func (l *Loader) WithHTTPClient(client *http.Client) *Loader {
	if client != nil {
		l.client = client
	}
	return l
}

// Source returns the configured catalog source
func (l *Loader) Source() string {
	return l.source
}

// Load fetches the catalog and normalizes every record. Any failure is
// reported as a *LoadError and no partial catalog is returned.
func (l *Loader) Load(ctx context.Context) ([]model.CatalogEntry, error) {
	started := time.Now()

	data, err := l.read(ctx)
	if err != nil {
		return nil, l.fail(err)
	}

	records, err := Decode(data, FormatOf(l.source))
	if err != nil {
		return nil, l.fail(err)
	}

	entries := l.normalizer.NormalizeAll(records)
	l.logger.Info("catalog loaded",
		zap.String("source", l.source),
		zap.Int("entries", len(entries)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return entries, nil
}

func (l *Loader) fail(err error) error {
	l.logger.Error("catalog load failed", zap.String("source", l.source), zap.Error(err))
	return &LoadError{Source: l.source, Err: err}
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	switch {
	case l.source == EmbeddedSource:
		return Embedded(), nil
	case isURL(l.source):
		return l.fetch(ctx)
	default:
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(l.source)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return data, nil
	}
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.1")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

// Decode parses a catalog document into raw records. The top level must be
// a list; its elements are passed to normalization unchanged.
func Decode(data []byte, format Format) ([]any, error) {
	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	}

	records, ok := doc.([]any)
	if !ok {
		return nil, ErrNotArray
	}
	return records, nil
}

// FormatOf picks the decoder from the source extension
func FormatOf(source string) Format {
	name := source
	if isURL(source) {
		if u, err := url.Parse(source); err == nil {
			name = u.Path
		}
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func isURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

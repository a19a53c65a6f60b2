package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	DefaultMaxParallel = 4
	maxPreviewBytes    = 20 << 20
	readyTTL           = 30 * time.Minute
	defaultFailedTTL   = time.Minute
	cleanupInterval    = 10 * time.Minute
	fetchTimeout       = 20 * time.Second
)

// ErrEmptySource is returned for an empty media reference
var ErrEmptySource = errors.New("empty media source")

// Service loads previews with bounded concurrency
type Service struct {
	cache     *cache.Cache
	client    *http.Client
	logger    *zap.Logger
	failedTTL time.Duration
	inflight  map[string]struct{}
	mu        sync.Mutex
	sem       chan struct{}
	wg        sync.WaitGroup
	onUpdate  func(Preview) // callback for UI updates
}

// NewService creates a new preview service
func NewService(maxParallel int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		cache:     cache.New(readyTTL, cleanupInterval),
		client:    &http.Client{Timeout: fetchTimeout},
		logger:    logger,
		failedTTL: defaultFailedTTL,
		inflight:  make(map[string]struct{}),
	}
	s.SetMaxParallel(maxParallel)
	return s
}

// WithHTTPClient replaces the client used for remote sources
func (s *Service) WithHTTPClient(client *http.Client) *Service {
	if client != nil {
		s.client = client
	}
	return s
}

// SetUpdateCallback sets the callback function for preview updates
func (s *Service) SetUpdateCallback(callback func(Preview)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetMaxParallel sets the maximum number of parallel fetches. Fetches that
// already hold a slot finish under the previous limit.
func (s *Service) SetMaxParallel(max int) {
	if max < 1 {
		max = DefaultMaxParallel
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sem = make(chan struct{}, max)
}

// Cached returns a previously loaded preview
func (s *Service) Cached(source string) (Preview, bool) {
	if value, ok := s.cache.Get(source); ok {
		return value.(Preview), true
	}
	return Preview{}, false
}

// Request loads source in the background and reports the result through
// the update callback. Cached sources are reported immediately.
func (s *Service) Request(ctx context.Context, source string) {
	if preview, ok := s.Cached(source); ok {
		s.notifyUpdate(preview)
		return
	}

	s.mu.Lock()
	if _, busy := s.inflight[source]; busy {
		s.mu.Unlock()
		return
	}
	s.inflight[source] = struct{}{}
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			delete(s.inflight, source)
			s.mu.Unlock()
		}()

		preview, _ := s.Fetch(ctx, source)
		s.notifyUpdate(preview)
	}()
}

// Wait blocks until every background request has finished
func (s *Service) Wait() {
	s.wg.Wait()
}

// Fetch loads source synchronously. Successful and failed results are both
// cached; failures expire sooner so a later request may retry.
func (s *Service) Fetch(ctx context.Context, source string) (Preview, error) {
	if preview, ok := s.Cached(source); ok {
		return preview, preview.Err
	}

	if strings.TrimSpace(source) == "" {
		return Preview{Source: source, Status: PreviewFailed, Err: ErrEmptySource}, ErrEmptySource
	}

	s.mu.Lock()
	sem := s.sem
	s.mu.Unlock()

	select {
	case sem <- struct{}{}:
	case <-ctx.Done():
		return Preview{Source: source, Status: PreviewFailed, Err: ctx.Err()}, ctx.Err()
	}
	defer func() { <-sem }()

	started := time.Now()
	data, contentType, err := s.load(ctx, source)
	if err != nil {
		preview := Preview{Source: source, Status: PreviewFailed, Err: err}
		if ctx.Err() == nil {
			s.cache.Set(source, preview, s.failedTTL)
		}
		s.logger.Warn("preview load failed", zap.String("source", source), zap.Error(err))
		return preview, err
	}

	preview := Preview{Source: source, Status: PreviewReady, ContentType: contentType, Data: data}
	s.cache.Set(source, preview, cache.DefaultExpiration)
	s.logger.Debug("preview loaded",
		zap.String("source", source),
		zap.Int("bytes", len(data)),
		zap.String("content_type", contentType),
		zap.Duration("elapsed", time.Since(started)),
	)
	return preview, nil
}

func (s *Service) load(ctx context.Context, source string) ([]byte, string, error) {
	lower := strings.ToLower(source)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return s.download(ctx, source)
	}

	path := strings.TrimPrefix(source, "file://")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read preview: %w", err)
	}
	return data, detectType(path, data, ""), nil
}

func (s *Service) download(ctx context.Context, source string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch preview: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("fetch preview: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPreviewBytes))
	if err != nil {
		return nil, "", fmt.Errorf("read preview: %w", err)
	}
	return data, detectType(req.URL.Path, data, resp.Header.Get("Content-Type")), nil
}

// detectType prefers the server header, then the file extension, then
// content sniffing
func detectType(name string, data []byte, header string) string {
	if mediaType, _, err := mime.ParseMediaType(header); err == nil && mediaType != "application/octet-stream" {
		return mediaType
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
		mediaType, _, _ := mime.ParseMediaType(byExt)
		return mediaType
	}
	mediaType, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mediaType
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(preview Preview) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(preview)
	}
}

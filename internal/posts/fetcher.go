package posts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HTTPFetcher loads the full post collection with a single GET.
type HTTPFetcher struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewHTTPFetcher creates a fetcher for endpoint. A nil client uses
// http.DefaultClient; a nil logger discards logs.
func NewHTTPFetcher(endpoint string, client *http.Client, logger *zap.Logger) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPFetcher{endpoint: endpoint, client: client, logger: logger}
}

// Endpoint returns the URL the fetcher reads from.
func (f *HTTPFetcher) Endpoint() string { return f.endpoint }

// FetchAll issues one request and returns the decoded posts. Every failure
// is a *FetchError. There is no retry and no timeout beyond ctx.
func (f *HTTPFetcher) FetchAll(ctx context.Context) ([]Post, error) {
	requestID := uuid.NewString()
	log := f.logger.With(zap.String("request_id", requestID), zap.String("endpoint", f.endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	log.Debug("fetching posts")
	resp, err := f.client.Do(req)
	if err != nil {
		log.Warn("fetch transport error", zap.Error(err))
		return nil, &FetchError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Warn("fetch bad status", zap.Int("status", resp.StatusCode))
		return nil, &FetchError{Status: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	posts, err := Decode(resp.Body)
	if err != nil {
		log.Warn("fetch decode error", zap.Error(err))
		return nil, &FetchError{Status: resp.StatusCode, Err: err}
	}

	log.Info("posts fetched", zap.Int("count", len(posts)))
	return posts, nil
}

// Decode reads a JSON array of posts and validates every record. A single
// invalid record fails the whole decode.
func Decode(r io.Reader) ([]Post, error) {
	var wire []wirePost
	dec := json.NewDecoder(r)
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if wire == nil {
		return nil, errors.New("decode body: expected a JSON array, got null")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode body: trailing data")
	}

	posts := make([]Post, 0, len(wire))
	seen := make(map[int64]struct{}, len(wire))
	for i, w := range wire {
		p, err := w.toPost()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %d", i, p.ID)
		}
		seen[p.ID] = struct{}{}
		posts = append(posts, p)
	}
	return posts, nil
}

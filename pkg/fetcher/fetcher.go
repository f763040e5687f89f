package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrFetch is matched by every error returned from a failed fetch.
var ErrFetch = errors.New("fetch failed")

const DefaultUserAgent = "article-summarizer/1.0 (+https://github.com/dtnitsch/article-summarizer)"

// FetchError describes a network or HTTP failure for a single URL.
// StatusCode is 0 when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFetch}
	}
	return []error{ErrFetch, e.Err}
}

type Fetcher struct {
	client    *http.Client
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying client, mostly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// GetHtmlBytes performs a single GET request. Any non-2xx status is a FetchError.
// There is no retry.
func (f *Fetcher) GetHtmlBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("failed to make HTTP request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return bodyBytes, nil
}

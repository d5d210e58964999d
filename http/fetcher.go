// Package http provides the HTTP implementation of sitegrab.Fetcher:
// buffered page fetches for the traversal phase and streamed fetches for
// the download phase.
package http

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/fwojciec/sitegrab"
	"golang.org/x/net/publicsuffix"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is a browser-like user agent sent with every request.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"

// Ensure Fetcher implements sitegrab.Fetcher at compile time.
var _ sitegrab.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves resources using HTTP requests.
// It sends a configurable user agent, fixed cookies, and extra headers on
// every request, and keeps server-set cookies in a jar across requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	cookies   []*http.Cookie
	headers   http.Header
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithCookies sets fixed cookies sent with every request.
func WithCookies(cookies map[string]string) Option {
	return func(f *Fetcher) {
		for name, value := range cookies {
			f.cookies = append(f.cookies, &http.Cookie{Name: name, Value: value})
		}
	}
}

// WithHeaders sets extra headers sent with every request.
func WithHeaders(headers map[string]string) Option {
	return func(f *Fetcher) {
		for name, value := range headers {
			f.headers.Set(name, value)
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		headers:   make(http.Header),
	}
	for _, opt := range opts {
		opt(f)
	}

	// The jar keeps server-set session cookies across requests; the error
	// is impossible with a non-nil options struct.
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

	f.client = &http.Client{
		Timeout: f.timeout,
		Jar:     jar,
	}

	return f
}

// Fetch retrieves a URL and returns its status, content type, and body.
// An error is returned only for transport faults; non-2xx statuses are
// reported through the Response so the engine can end the branch silently.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*sitegrab.Response, error) {
	resp, err := f.do(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &sitegrab.Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// Stream opens a URL for chunked reading. Unlike Fetch, a non-2xx status
// is an error here: downloads need an explicit per-URL failure and no file
// should be created for a failed response.
func (f *Fetcher) Stream(ctx context.Context, url string) (io.ReadCloser, error) {
	resp, err := f.do(ctx, url)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, sitegrab.Errorf(sitegrab.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	return resp.Body, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func (f *Fetcher) do(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", f.userAgent)
	for name, values := range f.headers {
		for _, value := range values {
			req.Header.Set(name, value)
		}
	}
	for _, cookie := range f.cookies {
		req.AddCookie(cookie)
	}

	return f.client.Do(req)
}

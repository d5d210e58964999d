package sitegrab

import (
	"context"
	"io"
	"strings"
)

// Response is the result of fetching a URL.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Success reports whether the response carries a 2xx status.
// A non-success response is not an error: it simply ends that branch of
// the traversal.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsHTML reports whether the Content-Type indicates an HTML document.
// Only HTML responses are scanned for links.
func (r *Response) IsHTML() bool {
	return strings.Contains(r.ContentType, "text/html")
}

// Fetcher retrieves resources over HTTP.
type Fetcher interface {
	// Fetch retrieves a URL and returns its status, content type, and body.
	// An error is returned only for transport-level faults; a non-2xx
	// status is reported through the Response.
	Fetch(ctx context.Context, url string) (*Response, error)

	// Stream opens a URL for chunked reading, for downloading large
	// resources without buffering them in memory. Unlike Fetch, a non-2xx
	// status is an error: downloads need an explicit per-URL failure.
	// The caller must close the returned reader.
	Stream(ctx context.Context, url string) (io.ReadCloser, error)

	// Close releases client resources.
	Close() error
}

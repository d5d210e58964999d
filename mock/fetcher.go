package mock

import (
	"context"
	"io"

	"github.com/fwojciec/sitegrab"
)

var _ sitegrab.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sitegrab.Fetcher.
type Fetcher struct {
	FetchFn  func(ctx context.Context, url string) (*sitegrab.Response, error)
	StreamFn func(ctx context.Context, url string) (io.ReadCloser, error)
	CloseFn  func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*sitegrab.Response, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Stream(ctx context.Context, url string) (io.ReadCloser, error) {
	return f.StreamFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

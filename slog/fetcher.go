// Package slog provides logging decorators for sitegrab interfaces.
package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/sitegrab"
)

// Ensure LoggingFetcher implements sitegrab.Fetcher.
var _ sitegrab.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   sitegrab.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next sitegrab.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (resp *sitegrab.Response, err error) {
	defer func(begin time.Time) {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		f.logger.Debug("fetch",
			"url", url,
			"status", status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Stream delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Stream(ctx context.Context, url string) (body io.ReadCloser, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("stream",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Stream(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

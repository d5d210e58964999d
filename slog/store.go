package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/sitegrab"
)

// Ensure LoggingStore implements sitegrab.Store.
var _ sitegrab.Store = (*LoggingStore)(nil)

// LoggingStore wraps a Store with per-download logging.
type LoggingStore struct {
	next   sitegrab.Store
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next sitegrab.Store, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Save(ctx context.Context, url string, body io.Reader) (saved *sitegrab.SavedFile, err error) {
	defer func(begin time.Time) {
		var size int64
		if saved != nil {
			size = saved.Size
		}
		s.logger.Info("download",
			"url", url,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, url, body)
}

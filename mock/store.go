package mock

import (
	"context"
	"io"

	"github.com/fwojciec/sitegrab"
)

var _ sitegrab.Store = (*Store)(nil)

// Store is a mock implementation of sitegrab.Store.
type Store struct {
	SaveFn func(ctx context.Context, url string, body io.Reader) (*sitegrab.SavedFile, error)
}

func (s *Store) Save(ctx context.Context, url string, body io.Reader) (*sitegrab.SavedFile, error) {
	return s.SaveFn(ctx, url, body)
}

var _ sitegrab.SeedSource = (*SeedSource)(nil)

// SeedSource is a mock implementation of sitegrab.SeedSource.
type SeedSource struct {
	DiscoverSeedsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SeedSource) DiscoverSeeds(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverSeedsFn(ctx, baseURL)
}

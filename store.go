package sitegrab

import (
	"context"
	"io"
)

// SavedFile describes a download written to storage.
type SavedFile struct {
	ID   string
	URL  string
	Path string
	Size int64
	Hash string
}

// Store persists downloaded resources.
type Store interface {
	// Save streams body to storage under a name derived from the URL's
	// last path segment. A later save with the same name overwrites an
	// earlier one.
	Save(ctx context.Context, url string, body io.Reader) (*SavedFile, error)
}

// SeedSource discovers seed URLs for a crawl, e.g. from a site's sitemap.
type SeedSource interface {
	DiscoverSeeds(ctx context.Context, baseURL string) ([]string, error)
}

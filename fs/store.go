// Package fs provides file-based storage for downloaded resources.
package fs

import (
	"context"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitegrab"
	"github.com/google/uuid"
)

// chunkSize is the buffer size for streaming writes, so large downloads
// never need full buffering.
const chunkSize = 32 * 1024

// Ensure DirStore implements sitegrab.Store at compile time.
var _ sitegrab.Store = (*DirStore)(nil)

// DirStore writes downloads as flat files in a single directory.
// The destination file name is the URL's last path segment; a later
// download with the same name overwrites an earlier one.
type DirStore struct {
	dir string
}

// NewDirStore creates a DirStore writing to dir.
// An empty dir defaults to "downloads".
func NewDirStore(dir string) *DirStore {
	if dir == "" {
		dir = "downloads"
	}
	return &DirStore{dir: dir}
}

// Dir returns the directory downloads are written to.
func (s *DirStore) Dir() string {
	return s.dir
}

// Save streams body to a file named after the URL's last path segment,
// in fixed-size chunks. URLs ending in a slash fall back to "index".
// The returned SavedFile carries the byte size and a content hash of what
// was written.
func (s *DirStore) Save(ctx context.Context, url string, body io.Reader) (*sitegrab.SavedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := sitegrab.LastSegment(url)
	if name == "" {
		name = "index"
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, name)
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	digest := xxhash.New()
	buf := make([]byte, chunkSize)
	size, err := io.CopyBuffer(file, io.TeeReader(body, digest), buf)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// Don't leave a truncated file behind a failed stream.
		_ = os.Remove(path)
		return nil, err
	}

	return &sitegrab.SavedFile{
		ID:   uuid.New().String(),
		URL:  url,
		Path: path,
		Size: size,
		Hash: hex.EncodeToString(digest.Sum(nil)),
	}, nil
}

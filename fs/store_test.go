package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/sitegrab/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes the body under the last path segment", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewDirStore(dir)

		saved, err := store.Save(context.Background(), "http://example.com/docs/report.pdf", strings.NewReader("content"))
		require.NoError(t, err)

		assert.Equal(t, "http://example.com/docs/report.pdf", saved.URL)
		assert.Equal(t, filepath.Join(dir, "report.pdf"), saved.Path)
		assert.Equal(t, int64(len("content")), saved.Size)
		assert.NotEmpty(t, saved.ID)
		assert.NotEmpty(t, saved.Hash)

		data, err := os.ReadFile(saved.Path)
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
	})

	t.Run("falls back to index for URLs ending in a slash", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewDirStore(dir)

		saved, err := store.Save(context.Background(), "http://example.com/docs/", strings.NewReader("page"))
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "index"), saved.Path)
	})

	t.Run("later saves overwrite same-named files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewDirStore(dir)

		_, err := store.Save(context.Background(), "http://example.com/a/file.pdf", strings.NewReader("first"))
		require.NoError(t, err)
		saved, err := store.Save(context.Background(), "http://example.com/b/file.pdf", strings.NewReader("second"))
		require.NoError(t, err)

		data, err := os.ReadFile(saved.Path)
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})

	t.Run("creates the directory if missing", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "downloads")
		store := fs.NewDirStore(dir)

		_, err := store.Save(context.Background(), "http://example.com/file.pdf", strings.NewReader("x"))
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "file.pdf"))
		assert.NoError(t, err)
	})

	t.Run("identical bodies hash identically", func(t *testing.T) {
		t.Parallel()

		store := fs.NewDirStore(t.TempDir())

		a, err := store.Save(context.Background(), "http://example.com/a.pdf", strings.NewReader("same"))
		require.NoError(t, err)
		b, err := store.Save(context.Background(), "http://example.com/b.pdf", strings.NewReader("same"))
		require.NoError(t, err)
		c, err := store.Save(context.Background(), "http://example.com/c.pdf", strings.NewReader("different"))
		require.NoError(t, err)

		assert.Equal(t, a.Hash, b.Hash)
		assert.NotEqual(t, a.Hash, c.Hash)
	})

	t.Run("removes the file when the body fails mid-stream", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewDirStore(dir)

		_, err := store.Save(context.Background(), "http://example.com/broken.pdf", &failingReader{})
		require.Error(t, err)

		_, err = os.Stat(filepath.Join(dir, "broken.pdf"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("rejects canceled contexts", func(t *testing.T) {
		t.Parallel()

		store := fs.NewDirStore(t.TempDir())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := store.Save(ctx, "http://example.com/file.pdf", strings.NewReader("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("empty directory defaults to downloads", func(t *testing.T) {
		t.Parallel()

		store := fs.NewDirStore("")
		assert.Equal(t, "downloads", store.Dir())
	})
}

// failingReader fails after the first chunk.
type failingReader struct {
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, assert.AnError
	}
	r.done = true
	n := copy(p, []byte("partial"))
	return n, nil
}

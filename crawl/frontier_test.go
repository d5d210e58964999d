package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/sitegrab"
	"github.com/fwojciec/sitegrab/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier(t *testing.T) {
	t.Parallel()

	t.Run("pops links in discovery order", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		f.Push(sitegrab.Link{URL: "http://example.com/a", Depth: 0})
		f.Push(sitegrab.Link{URL: "http://example.com/b", Depth: 1})
		f.Push(sitegrab.Link{URL: "http://example.com/c", Depth: 1})

		link, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, "http://example.com/a", link.URL)

		link, ok = f.Pop()
		require.True(t, ok)
		assert.Equal(t, "http://example.com/b", link.URL)

		link, ok = f.Pop()
		require.True(t, ok)
		assert.Equal(t, "http://example.com/c", link.URL)

		_, ok = f.Pop()
		assert.False(t, ok)
	})

	t.Run("deduplicates on URL", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		assert.True(t, f.Push(sitegrab.Link{URL: "http://example.com/a"}))
		assert.False(t, f.Push(sitegrab.Link{URL: "http://example.com/a", Depth: 3}))
		assert.Equal(t, 1, f.Len())
	})

	t.Run("remembers popped URLs", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		f.Push(sitegrab.Link{URL: "http://example.com/a"})
		_, _ = f.Pop()

		assert.True(t, f.Seen("http://example.com/a"))
		assert.False(t, f.Push(sitegrab.Link{URL: "http://example.com/a"}))
		assert.False(t, f.Seen("http://example.com/b"))
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(10000, 0.01)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					f.Push(sitegrab.Link{URL: fmt.Sprintf("http://example.com/%d/%d", n, j)})
					f.Pop()
				}
			}(i)
		}
		wg.Wait()
	})
}

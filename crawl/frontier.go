package crawl

import (
	"sync"

	"github.com/fwojciec/sitegrab"
	"github.com/fwojciec/sitegrab/bloom"
)

// Compile-time interface verification.
var _ sitegrab.Frontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO crawl queue with Bloom filter deduplication.
// Links are popped in the order they were discovered, which makes the walk
// explore pages in link-extraction order. It is safe for concurrent use by
// multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []sitegrab.Link
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// Push adds a link to the frontier.
// Returns false if the URL has already been seen. Links are expected to be
// normalized by the caller; the frontier deduplicates on the exact string.
func (f *Frontier) Push(link sitegrab.Link) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.Test(link.URL) {
		return false
	}
	f.seen.Add(link.URL)
	f.queue = append(f.queue, link)
	return true
}

// Pop returns the next link in discovery order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (sitegrab.Link, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return sitegrab.Link{}, false
	}
	link := f.queue[0]
	f.queue = f.queue[1:]
	return link, true
}

// Len returns the number of links waiting in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been queued or processed.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(url)
}

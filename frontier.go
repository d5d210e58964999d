package sitegrab

import "context"

// Link is a frontier work item: a URL with the depth it was discovered at.
type Link struct {
	URL   string
	Depth int
}

// Frontier manages the crawl queue with deduplication.
type Frontier interface {
	// Push adds a link to the frontier.
	// Returns false if the URL has already been seen.
	Push(link Link) bool

	// Pop returns the next link in discovery order.
	// Returns false if the frontier is empty.
	Pop() (Link, bool)

	// Len returns the number of links waiting in the queue.
	Len() int

	// Seen returns true if the URL has been queued or processed.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

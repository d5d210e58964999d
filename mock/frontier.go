package mock

import (
	"context"

	"github.com/fwojciec/sitegrab"
)

var _ sitegrab.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of sitegrab.Frontier.
type Frontier struct {
	PushFn func(link sitegrab.Link) bool
	PopFn  func() (sitegrab.Link, bool)
	LenFn  func() int
	SeenFn func(url string) bool
}

func (f *Frontier) Push(link sitegrab.Link) bool {
	return f.PushFn(link)
}

func (f *Frontier) Pop() (sitegrab.Link, bool) {
	return f.PopFn()
}

func (f *Frontier) Len() int {
	return f.LenFn()
}

func (f *Frontier) Seen(url string) bool {
	return f.SeenFn(url)
}

var _ sitegrab.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of sitegrab.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

package mock

import "github.com/fwojciec/sitegrab"

var _ sitegrab.Matcher = (*Matcher)(nil)

// Matcher is a mock implementation of sitegrab.Matcher.
type Matcher struct {
	MatchFn func(url string) bool
}

func (m *Matcher) Match(url string) bool {
	return m.MatchFn(url)
}

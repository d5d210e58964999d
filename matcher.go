package sitegrab

import "strings"

// Matcher decides whether a discovered link should be downloaded.
type Matcher interface {
	// Match returns true if the URL should be queued for downloading.
	Match(url string) bool
}

// MatchFunc adapts a plain function to the Matcher interface.
type MatchFunc func(url string) bool

// Match calls f(url).
func (f MatchFunc) Match(url string) bool {
	return f(url)
}

// MatchExtensions returns a Matcher that matches URLs ending in any of the
// given extensions (case-insensitive). Extensions should include the dot,
// e.g. ".pdf".
func MatchExtensions(exts ...string) Matcher {
	lowered := make([]string, len(exts))
	for i, ext := range exts {
		lowered[i] = strings.ToLower(ext)
	}
	return MatchFunc(func(url string) bool {
		url = strings.ToLower(url)
		for _, ext := range lowered {
			if strings.HasSuffix(url, ext) {
				return true
			}
		}
		return false
	})
}

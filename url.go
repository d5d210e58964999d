package sitegrab

import (
	"net/url"
	"strings"
)

// NormalizeLink strips the query and/or fragment from a link.
// Stripping is literal substring truncation at the first occurrence of the
// delimiter, not a full URL reparse: set membership and predicate checks
// must see exactly the truncated string.
func NormalizeLink(link string, keepQuery, keepFragment bool) string {
	if !keepQuery {
		if i := strings.Index(link, "?"); i != -1 {
			link = link[:i]
		}
	}
	if !keepFragment {
		if i := strings.Index(link, "#"); i != -1 {
			link = link[:i]
		}
	}
	return link
}

// HostOf returns the host component of rawURL.
// Returns "" if the URL cannot be parsed.
func HostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// PathOf returns the path component of rawURL.
// Returns "" if the URL cannot be parsed.
func PathOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Path
}

// LastSegment returns the text after the final "/" of rawURL.
// This is the destination file name for a download; it may be empty for
// URLs ending in a slash.
func LastSegment(rawURL string) string {
	if i := strings.LastIndex(rawURL, "/"); i != -1 {
		return rawURL[i+1:]
	}
	return rawURL
}

package sitegrab

import (
	"net/url"
	"strings"
)

// QueryParam is a single extra query parameter to inject into fetched URLs.
// Parameters are kept as an ordered slice so the rebuilt query string is
// stable across runs.
type QueryParam struct {
	Key   string
	Value string
}

// Task describes one crawl-and-download run.
// The zero value of the optional fields means: unbounded depth and volume,
// strip queries and fragments, follow all paths, ignore nothing.
type Task struct {
	// Seeds are the starting URLs, processed in order at depth 0.
	Seeds []string

	// Domains is the set of hosts the engine may fetch and recurse into.
	// Seeds must satisfy this too, or traversal silently no-ops for them.
	Domains []string

	// Match selects which discovered links are queued for downloading.
	Match Matcher

	// PathRules admit link paths for following. Empty means follow all.
	PathRules PathRules

	// IgnorePaths lists path prefixes that are never followed, regardless
	// of PathRules.
	IgnorePaths []string

	// MaxDepth bounds traversal depth. 0 means unbounded.
	MaxDepth int

	// MaxDownloads bounds the size of the download set. 0 means unbounded.
	MaxDownloads int

	// KeepQuery preserves query strings on discovered links.
	// By default queries are stripped before any set-membership or
	// predicate check.
	KeepQuery bool

	// KeepFragment preserves fragments on discovered links.
	KeepFragment bool

	// QueryParams, when set, replace the query string of every fetched URL.
	// Discovered links are stored un-rewritten.
	QueryParams []QueryParam
}

// Validate returns an error if the task is missing required fields.
func (t *Task) Validate() error {
	if len(t.Seeds) == 0 {
		return Errorf(EINVALID, "task seed URLs required")
	}
	if len(t.Domains) == 0 {
		return Errorf(EINVALID, "task followable domains required")
	}
	if t.Match == nil {
		return Errorf(EINVALID, "task download matcher required")
	}
	return nil
}

// AdmitsDomain reports whether host is in the followable domain set.
func (t *Task) AdmitsDomain(host string) bool {
	for _, d := range t.Domains {
		if d == host {
			return true
		}
	}
	return false
}

// Normalize applies the task's query/fragment stripping to a link.
func (t *Task) Normalize(link string) string {
	return NormalizeLink(link, t.KeepQuery, t.KeepFragment)
}

// Ignored reports whether a link path starts with any ignore-path prefix.
func (t *Task) Ignored(path string) bool {
	for _, prefix := range t.IgnorePaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// InjectQuery rebuilds rawURL's query string to be exactly the configured
// extra parameters joined by "&", replacing any existing query.
// Returns rawURL unchanged if no parameters are configured or the URL
// cannot be parsed.
func (t *Task) InjectQuery(rawURL string) string {
	if len(t.QueryParams) == 0 {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	pairs := make([]string, len(t.QueryParams))
	for i, p := range t.QueryParams {
		pairs[i] = p.Key + "=" + p.Value
	}
	u.RawQuery = strings.Join(pairs, "&")
	return u.String()
}

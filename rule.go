package sitegrab

import "strings"

// PathRule admits links whose path starts with Prefix.
// If Rewrite is non-empty, the first occurrence of Prefix anywhere in the
// full link string is replaced with Rewrite before the link is followed.
type PathRule struct {
	Prefix  string
	Rewrite string
}

// PathRules is an ordered list of path admission rules.
// An empty list admits every path.
type PathRules []PathRule

// Admit reports whether a link's path is admitted for following and returns
// the link to follow. Rules are scanned in order and the first matching rule
// wins; a rewrite rule replaces the first occurrence of its prefix in the
// full link string, not just in the path component.
func (rs PathRules) Admit(link string) (string, bool) {
	if len(rs) == 0 {
		return link, true
	}
	path := PathOf(link)
	for _, r := range rs {
		if !strings.HasPrefix(path, r.Prefix) {
			continue
		}
		if r.Rewrite != "" {
			return strings.Replace(link, r.Prefix, r.Rewrite, 1), true
		}
		return link, true
	}
	return link, false
}

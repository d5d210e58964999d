// Package goquery provides HTML link extraction using CSS selectors.
package goquery

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitegrab"
)

// Ensure Extractor implements sitegrab.LinkExtractor at compile time.
var _ sitegrab.LinkExtractor = (*Extractor)(nil)

// Extractor extracts hyperlinks from HTML documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLinks parses HTML and returns absolute hyperlinks in document
// order, deduplicated keeping the first occurrence. Relative links are
// resolved against baseURL; javascript:, mailto:, tel:, and data: links
// are skipped.
func (e *Extractor) ExtractLinks(html []byte, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, sitegrab.Errorf(sitegrab.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, sitegrab.Errorf(sitegrab.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		if seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links, nil
}

// isNonHTTPLink reports whether href uses a scheme that can never be
// fetched (javascript:, mailto:, tel:, data:).
func isNonHTTPLink(href string) bool {
	lower := strings.ToLower(href)
	return strings.HasPrefix(lower, "javascript:") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "tel:") ||
		strings.HasPrefix(lower, "data:")
}

// resolveURL resolves href against base and returns the absolute URL.
// Returns "" for unparsable hrefs or non-http(s) results.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(ref)
	switch resolved.Scheme {
	case "http", "https":
		return resolved.String()
	default:
		return ""
	}
}

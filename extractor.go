package sitegrab

// LinkExtractor extracts hyperlinks from HTML documents.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns absolute hyperlinks in document
	// order, deduplicated keeping the first occurrence. Relative links are
	// resolved against baseURL; non-http(s) links are skipped.
	ExtractLinks(html []byte, baseURL string) ([]string, error)
}

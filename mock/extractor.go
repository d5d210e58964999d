package mock

import "github.com/fwojciec/sitegrab"

var _ sitegrab.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of sitegrab.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html []byte, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html []byte, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}

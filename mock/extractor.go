package mock

import "github.com/fwojciec/obfeed"

var _ obfeed.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of obfeed.PageExtractor.
type PageExtractor struct {
	ExtractFn func(html, pageURL string) (*obfeed.Page, error)
}

func (e *PageExtractor) Extract(html, pageURL string) (*obfeed.Page, error) {
	return e.ExtractFn(html, pageURL)
}

var _ obfeed.ArticleNormalizer = (*ArticleNormalizer)(nil)

// ArticleNormalizer is a mock implementation of obfeed.ArticleNormalizer.
type ArticleNormalizer struct {
	NormalizeFn func(candidates []*obfeed.ArticleCandidate, description string) ([]*obfeed.Entry, []obfeed.Drop)
}

func (n *ArticleNormalizer) Normalize(candidates []*obfeed.ArticleCandidate, description string) ([]*obfeed.Entry, []obfeed.Drop) {
	return n.NormalizeFn(candidates, description)
}

package obfeed

// Page holds everything extracted from one fetched blog page.
type Page struct {
	Blog *BlogMetadata

	// Articles are in document order.
	Articles []*ArticleCandidate
}

// PageExtractor parses a fetched page and extracts blog metadata and
// article candidates.
type PageExtractor interface {
	// Extract parses html fetched from pageURL. It fails with
	// EMISSINGMETADATA, EMALFORMEDMETADATA or EIDENTITY when the blog
	// identity cannot be recovered. Problems with individual articles never
	// fail the extraction.
	Extract(html string, pageURL string) (*Page, error)
}

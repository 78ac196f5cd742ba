package obfeed

// BlogMetadata is the feed-level identity of a blog, extracted once per page.
type BlogMetadata struct {
	Title         string
	Language      string
	Description   string
	AuthorName    string
	CoverImageURL string
	FaviconURL    string
	CanonicalURL  string
}

// Validate returns EIDENTITY if the fields required for a feed identity
// are missing.
func (b *BlogMetadata) Validate() error {
	if b.Title == "" {
		return Errorf(EIDENTITY, "blog title not found")
	}
	if b.CanonicalURL == "" {
		return Errorf(EIDENTITY, "blog canonical link not found")
	}
	return nil
}

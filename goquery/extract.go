// Package goquery extracts blog metadata and article candidates from pages
// rendered by the blog platform, using CSS selectors over a goquery
// document.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/obfeed"
)

// Ensure Extractor implements obfeed.PageExtractor at compile time.
var _ obfeed.PageExtractor = (*Extractor)(nil)

// Extractor parses fetched pages into blog metadata and article candidates.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and extracts the blog identity and every article
// block. Relative links are resolved against pageURL.
func (e *Extractor) Extract(html string, pageURL string) (*obfeed.Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, obfeed.Errorf(obfeed.EINVALID, "failed to parse HTML: %v", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, obfeed.Errorf(obfeed.EINVALID, "invalid page URL: %v", err)
	}

	blog, err := ExtractBlog(doc, base)
	if err != nil {
		return nil, err
	}

	return &obfeed.Page{
		Blog:     blog,
		Articles: ExtractArticles(doc, base),
	}, nil
}

// resolveURL resolves href against base. Returns an empty string for empty
// or unparseable hrefs and for non-HTTP links.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || isNonHTTPLink(href) {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// collapseSpace trims s and replaces runs of whitespace with one space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// firstAttr returns the attribute of the first element matching selector.
func firstAttr(sel *goquery.Selection, selector, attr string) string {
	v, _ := sel.Find(selector).First().Attr(attr)
	return strings.TrimSpace(v)
}

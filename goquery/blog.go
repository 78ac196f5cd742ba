package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/obfeed"
	"github.com/fwojciec/obfeed/datalayer"
)

// Head selectors for page-level metadata.
const (
	DescriptionSelector = `meta[name="description"]`
	AuthorSelector      = `meta[name="author"]`
	CoverImageSelector  = `meta[property="og:image"]`
	FaviconSelector     = `link[rel="icon"], link[rel="shortcut icon"]`
	CanonicalSelector   = `.header_link`
)

// ExtractBlog reads the blog identity from the data layer script and the
// page-level metadata from head elements. Missing optional metadata leaves
// the field empty; a missing title or canonical link fails with EIDENTITY.
func ExtractBlog(doc *goquery.Document, base *url.URL) (*obfeed.BlogMetadata, error) {
	script, ok := findDataLayerScript(doc)
	if !ok {
		return nil, obfeed.Errorf(obfeed.EMISSINGMETADATA, "no script contains %q", datalayer.Marker)
	}

	layer, err := datalayer.Parse(script)
	if err != nil {
		return nil, err
	}

	root := doc.Selection
	blog := &obfeed.BlogMetadata{
		Title:         strings.TrimSpace(layer.BlogName),
		Language:      strings.TrimSpace(layer.Lang),
		Description:   firstAttr(root, DescriptionSelector, "content"),
		AuthorName:    firstAttr(root, AuthorSelector, "content"),
		CoverImageURL: resolveURL(base, firstAttr(root, CoverImageSelector, "content")),
		FaviconURL:    resolveURL(base, firstAttr(root, FaviconSelector, "href")),
		CanonicalURL:  resolveURL(base, firstAttr(root, CanonicalSelector, "href")),
	}
	if err := blog.Validate(); err != nil {
		return nil, err
	}
	return blog, nil
}

// findDataLayerScript returns the text of the first script element holding
// the data layer assignment.
func findDataLayerScript(doc *goquery.Document) (string, bool) {
	var script string
	doc.Find("script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if text := sel.Text(); strings.Contains(text, datalayer.Marker) {
			script = text
			return false
		}
		return true
	})
	return script, script != ""
}

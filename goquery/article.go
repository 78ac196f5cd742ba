package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/obfeed"
)

// Article block selectors. Field selectors apply within one block.
const (
	ArticleSelector    = ".article"
	TitleSelector      = "h2"
	BodySelector       = ".ob-sections"
	FooterSelector     = ".article_footer_info"
	DateHeaderSelector = ".date-header"
	LinkSelector       = "a.article_link"
	ThumbnailSelector  = "img"
)

// ExtractArticles returns one candidate per article block, in document
// order. Fields that are absent from a block are left empty.
func ExtractArticles(doc *goquery.Document, base *url.URL) []*obfeed.ArticleCandidate {
	var candidates []*obfeed.ArticleCandidate
	doc.Find(ArticleSelector).Each(func(_ int, sel *goquery.Selection) {
		candidates = append(candidates, extractArticle(sel, base))
	})
	return candidates
}

func extractArticle(sel *goquery.Selection, base *url.URL) *obfeed.ArticleCandidate {
	c := &obfeed.ArticleCandidate{
		Title:          collapseSpace(sel.Find(TitleSelector).First().Text()),
		FooterText:     collapseSpace(sel.Find(FooterSelector).First().Text()),
		DateHeaderText: collapseSpace(sel.Find(DateHeaderSelector).First().Text()),
		CanonicalURL:   resolveURL(base, firstAttr(sel, LinkSelector, "href")),
		ThumbnailURL:   resolveURL(base, firstAttr(sel, ThumbnailSelector, "src")),
	}

	if body := sel.Find(BodySelector).First(); body.Length() > 0 {
		if html, err := body.Html(); err == nil {
			c.BodyHTML = strings.TrimSpace(html)
		}
	}

	return c
}

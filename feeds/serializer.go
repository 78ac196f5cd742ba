// Package feeds renders obfeed feeds as Atom or RSS documents using
// github.com/gorilla/feeds.
package feeds

import (
	"mime"
	"net/url"
	"path"

	"github.com/beevik/etree"
	"github.com/fwojciec/obfeed"
	"github.com/gorilla/feeds"
)

// Ensure Serializer implements obfeed.FeedSerializer at compile time.
var _ obfeed.FeedSerializer = (*Serializer)(nil)

// DefaultImageType is the enclosure type used when a thumbnail URL has no
// recognizable extension.
const DefaultImageType = "image/jpeg"

// Serializer renders feeds. The output depends only on the feed: the
// updated timestamp is the latest entry date, never the wall clock.
type Serializer struct{}

// NewSerializer creates a new Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Serialize renders feed in the given format. An empty format means Atom.
func (s *Serializer) Serialize(feed *obfeed.Feed, format obfeed.Format) (string, error) {
	if err := feed.Blog.Validate(); err != nil {
		return "", err
	}

	f := build(feed)
	switch format {
	case obfeed.FormatAtom, "":
		return atom(f, feed.Blog)
	case obfeed.FormatRSS:
		return rss(f, feed.Blog)
	}
	return "", obfeed.Errorf(obfeed.EINVALID, "unknown feed format %q", format)
}

func build(feed *obfeed.Feed) *feeds.Feed {
	blog := feed.Blog
	f := &feeds.Feed{
		Title:       blog.Title,
		Link:        &feeds.Link{Href: blog.CanonicalURL},
		Description: blog.Description,
		Id:          blog.CanonicalURL,
		Updated:     feed.Updated(),
	}
	if blog.AuthorName != "" {
		f.Author = &feeds.Author{Name: blog.AuthorName}
	}
	if blog.CoverImageURL != "" {
		f.Image = &feeds.Image{
			Url:   blog.CoverImageURL,
			Title: blog.Title,
			Link:  blog.CanonicalURL,
		}
	}

	for _, e := range feed.Entries {
		item := &feeds.Item{
			Title:       e.Title,
			Link:        &feeds.Link{Href: e.Link},
			Id:          e.ID,
			IsPermaLink: "true",
			Description: e.Description,
			Content:     e.ContentHTML,
			Author:      &feeds.Author{Name: e.AuthorName},
			Created:     e.PublishedAt,
			Updated:     e.PublishedAt,
		}
		if e.ThumbnailURL != "" {
			item.Enclosure = &feeds.Enclosure{
				Url:    e.ThumbnailURL,
				Type:   imageType(e.ThumbnailURL),
				Length: "0",
			}
		}
		f.Items = append(f.Items, item)
	}
	return f
}

func atom(f *feeds.Feed, blog obfeed.BlogMetadata) (string, error) {
	af := (&feeds.Atom{Feed: f}).AtomFeed()
	af.Icon = blog.FaviconURL
	af.Logo = blog.CoverImageURL

	out, err := feeds.ToXML(af)
	if err != nil {
		return "", obfeed.Errorf(obfeed.EINTERNAL, "render atom: %v", err)
	}
	if blog.Language == "" {
		return out, nil
	}

	// The Atom model has no field for the feed language.
	doc := etree.NewDocument()
	if err := doc.ReadFromString(out); err != nil {
		return "", obfeed.Errorf(obfeed.EINTERNAL, "reparse atom: %v", err)
	}
	doc.Root().CreateAttr("xml:lang", blog.Language)
	out, err = doc.WriteToString()
	if err != nil {
		return "", obfeed.Errorf(obfeed.EINTERNAL, "render atom: %v", err)
	}
	return out, nil
}

func rss(f *feeds.Feed, blog obfeed.BlogMetadata) (string, error) {
	rf := (&feeds.Rss{Feed: f}).RssFeed()
	rf.Language = blog.Language
	// managingEditor must be an email address and the blog only has a name.
	rf.ManagingEditor = ""

	out, err := feeds.ToXML(rf)
	if err != nil {
		return "", obfeed.Errorf(obfeed.EINTERNAL, "render rss: %v", err)
	}
	return out, nil
}

// imageType guesses the MIME type of an image from its URL path.
func imageType(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	if t := mime.TypeByExtension(path.Ext(p)); t != "" {
		return t
	}
	return DefaultImageType
}

package obfeed

import (
	"strings"
	"time"
)

// ArticleCandidate holds the raw fields of one article block, before any
// normalization. Every field may be empty.
type ArticleCandidate struct {
	Title          string
	BodyHTML       string
	FooterText     string // e.g. "Posté par Jean à 14:30 - Commentaires"
	DateHeaderText string // e.g. "3 mars 2023"
	CanonicalURL   string
	ThumbnailURL   string
}

// Entry is a normalized feed entry.
type Entry struct {
	Title        string
	ID           string
	Link         string
	Description  string
	ContentHTML  string
	AuthorName   string
	PublishedAt  time.Time
	ThumbnailURL string
}

// Validate returns an error if the entry fails the validity gate.
func (e *Entry) Validate() error {
	if e.Title == "" {
		return Errorf(EINVALID, "entry title required")
	}
	if e.Link == "" {
		return Errorf(EINVALID, "entry link required")
	}
	if e.AuthorName == "" {
		return Errorf(EINVALID, "entry author required")
	}
	if e.PublishedAt.IsZero() {
		return Errorf(EINVALID, "entry publication date required")
	}
	return nil
}

// DropReason explains why an article candidate produced no entry.
type DropReason string

// Reasons an article is dropped.
const (
	DropMissingTitle      DropReason = "missing_title"
	DropMissingBody       DropReason = "missing_body"
	DropMissingAuthor     DropReason = "missing_author"
	DropMissingTime       DropReason = "missing_time"
	DropMissingDateHeader DropReason = "missing_date_header"
	DropUnparseableDate   DropReason = "unparseable_date"
	DropMissingURL        DropReason = "missing_url"
)

// Drop records an article that was skipped, with every reason that applied.
type Drop struct {
	Index   int // position of the article block in the document
	Title   string
	URL     string
	Reasons []DropReason
}

// String returns the reasons joined by commas.
func (d Drop) String() string {
	reasons := make([]string, len(d.Reasons))
	for i, r := range d.Reasons {
		reasons[i] = string(r)
	}
	return strings.Join(reasons, ",")
}

// ArticleNormalizer turns article candidates into feed entries.
type ArticleNormalizer interface {
	// Normalize returns one entry per valid candidate, in candidate order,
	// and one Drop per rejected candidate. description is the page-level
	// description used for every entry.
	Normalize(candidates []*ArticleCandidate, description string) ([]*Entry, []Drop)
}

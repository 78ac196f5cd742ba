package obfeed

import (
	"context"
	"time"
)

// Format is a syndication document format.
type Format string

// Supported feed formats.
const (
	FormatAtom Format = "atom"
	FormatRSS  Format = "rss"
)

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatAtom, FormatRSS:
		return Format(s), nil
	}
	return "", Errorf(EINVALID, "unknown feed format %q", s)
}

// Feed is the in-memory feed model for one site. Entries keep the order in
// which their article blocks appeared in the page.
type Feed struct {
	Blog    BlogMetadata
	Entries []*Entry
}

// NoEntriesUpdated is the update time of a feed without entries.
var NoEntriesUpdated = time.Unix(0, 0).UTC()

// Updated returns the latest entry publication date. A feed without
// entries reports NoEntriesUpdated, so output never depends on the clock.
func (f *Feed) Updated() time.Time {
	if len(f.Entries) == 0 {
		return NoEntriesUpdated
	}
	var latest time.Time
	for _, e := range f.Entries {
		if e.PublishedAt.After(latest) {
			latest = e.PublishedAt
		}
	}
	return latest
}

// FeedSerializer renders a feed as a syndication document.
type FeedSerializer interface {
	Serialize(feed *Feed, format Format) (string, error)
}

// FeedStore persists serialized feeds.
type FeedStore interface {
	// Save writes the document for the named site and returns where it was
	// written. Names map to locations deterministically.
	Save(ctx context.Context, name string, format Format, document string) (string, error)
}

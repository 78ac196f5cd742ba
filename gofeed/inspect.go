// Package gofeed reads written feed files back with github.com/mmcdole/gofeed
// to confirm feed readers can consume them.
package gofeed

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/fwojciec/obfeed"
	"github.com/mmcdole/gofeed"
)

// Summary describes a parsed feed file.
type Summary struct {
	Path     string
	Type     string // "atom" or "rss"
	Version  string
	Title    string
	Language string
	Entries  int
	Updated  *time.Time

	// Incomplete counts entries lacking a title, link or date.
	Incomplete int
}

// Inspector parses feed files.
type Inspector struct {
	parser *gofeed.Parser
}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{parser: gofeed.NewParser()}
}

// Inspect parses the feed at path.
func (i *Inspector) Inspect(ctx context.Context, path string) (*Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, obfeed.Errorf(obfeed.ENOTFOUND, "feed file %s not found", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	feed, err := i.parser.Parse(f)
	if err != nil {
		return nil, obfeed.Errorf(obfeed.EINVALID, "parse %s: %v", path, err)
	}

	s := &Summary{
		Path:     path,
		Type:     feed.FeedType,
		Version:  feed.FeedVersion,
		Title:    feed.Title,
		Language: feed.Language,
		Entries:  len(feed.Items),
		Updated:  feed.UpdatedParsed,
	}
	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" || (item.PublishedParsed == nil && item.UpdatedParsed == nil) {
			s.Incomplete++
		}
	}
	return s, nil
}

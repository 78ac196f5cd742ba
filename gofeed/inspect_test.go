package gofeed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/obfeed"
	"github.com/fwojciec/obfeed/feeds"
	"github.com/fwojciec/obfeed/fs"
	"github.com/fwojciec/obfeed/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writtenFeed(t *testing.T, format obfeed.Format) string {
	t.Helper()

	feed := &obfeed.Feed{
		Blog: obfeed.BlogMetadata{
			Title:        "Les carnets",
			Language:     "fr-FR",
			CanonicalURL: "https://carnets.over-blog.com/",
		},
		Entries: []*obfeed.Entry{{
			Title:       "Tarte aux pommes",
			ID:          "https://carnets.over-blog.com/2023/03/tarte.html",
			Link:        "https://carnets.over-blog.com/2023/03/tarte.html",
			ContentHTML: "<p>Une tarte.</p>",
			AuthorName:  "Hélène",
			PublishedAt: time.Date(2023, time.March, 3, 14, 30, 0, 0, time.UTC),
		}},
	}
	doc, err := feeds.NewSerializer().Serialize(feed, format)
	require.NoError(t, err)

	path, err := fs.NewFeedStore(t.TempDir()).Save(context.Background(), "carnets", format, doc)
	require.NoError(t, err)
	return path
}

func TestInspector_Inspect(t *testing.T) {
	t.Parallel()

	t.Run("summarizes an atom feed", func(t *testing.T) {
		t.Parallel()

		path := writtenFeed(t, obfeed.FormatAtom)

		s, err := gofeed.NewInspector().Inspect(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, path, s.Path)
		assert.Equal(t, "atom", s.Type)
		assert.Equal(t, "Les carnets", s.Title)
		assert.Equal(t, "fr-FR", s.Language)
		assert.Equal(t, 1, s.Entries)
		assert.Zero(t, s.Incomplete)
		require.NotNil(t, s.Updated)
		assert.True(t, time.Date(2023, time.March, 3, 14, 30, 0, 0, time.UTC).Equal(*s.Updated))
	})

	t.Run("summarizes an rss feed", func(t *testing.T) {
		t.Parallel()

		path := writtenFeed(t, obfeed.FormatRSS)

		s, err := gofeed.NewInspector().Inspect(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "rss", s.Type)
		assert.Equal(t, "2.0", s.Version)
		assert.Equal(t, 1, s.Entries)
		assert.Zero(t, s.Incomplete)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		_, err := gofeed.NewInspector().Inspect(context.Background(), filepath.Join(t.TempDir(), "feed-x.xml"))

		assert.Equal(t, obfeed.ENOTFOUND, obfeed.ErrorCode(err))
	})

	t.Run("non-feed content is invalid", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "feed-x.xml")
		require.NoError(t, os.WriteFile(path, []byte("<html><body>nope</body></html>"), 0644))

		_, err := gofeed.NewInspector().Inspect(context.Background(), path)

		assert.Equal(t, obfeed.EINVALID, obfeed.ErrorCode(err))
	})
}

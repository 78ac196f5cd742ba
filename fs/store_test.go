package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/obfeed"
	"github.com/fwojciec/obfeed/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "carnets", want: "carnets"},
		{name: "accents and apostrophe", in: "Les carnets d'Hélène", want: "les-carnets-d-helene"},
		{name: "path separators", in: "../etc/passwd", want: "etc-passwd"},
		{name: "surrounding punctuation", in: "  --Mon Blog!-- ", want: "mon-blog"},
		{name: "digits kept", in: "Blog 2023", want: "blog-2023"},
		{name: "nothing usable", in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.Slug(tt.in))
		})
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()

	t.Run("atom", func(t *testing.T) {
		t.Parallel()
		got, err := fs.FileName("carnets", obfeed.FormatAtom)
		require.NoError(t, err)
		assert.Equal(t, "feed-carnets.xml", got)
	})

	t.Run("rss", func(t *testing.T) {
		t.Parallel()
		got, err := fs.FileName("carnets", obfeed.FormatRSS)
		require.NoError(t, err)
		assert.Equal(t, "feed-carnets.rss.xml", got)
	})

	t.Run("empty slug", func(t *testing.T) {
		t.Parallel()
		_, err := fs.FileName("???", obfeed.FormatAtom)
		assert.Equal(t, obfeed.EINVALID, obfeed.ErrorCode(err))
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		_, err := fs.FileName("carnets", obfeed.Format("json"))
		assert.Equal(t, obfeed.EINVALID, obfeed.ErrorCode(err))
	})
}

func TestFeedStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes document and returns its path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewFeedStore(dir)

		path, err := store.Save(context.Background(), "Les carnets", obfeed.FormatAtom, "<feed/>")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "feed-les-carnets.xml"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<feed/>", string(content))
	})

	t.Run("creates the output directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out", "feeds")
		store := fs.NewFeedStore(dir)

		path, err := store.Save(context.Background(), "carnets", obfeed.FormatRSS, "<rss/>")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "feed-carnets.rss.xml"), path)
		assert.FileExists(t, path)
	})

	t.Run("overwrites and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewFeedStore(dir)

		_, err := store.Save(context.Background(), "carnets", obfeed.FormatAtom, "<feed>old</feed>")
		require.NoError(t, err)
		path, err := store.Save(context.Background(), "carnets", obfeed.FormatAtom, "<feed>new</feed>")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<feed>new</feed>", string(content))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "feed-carnets.xml", entries[0].Name())
	})

	t.Run("rejects names without usable characters", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewFeedStore(dir)

		_, err := store.Save(context.Background(), "///", obfeed.FormatAtom, "<feed/>")

		assert.Equal(t, obfeed.EINVALID, obfeed.ErrorCode(err))
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("respects canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewFeedStore(t.TempDir()).Save(ctx, "carnets", obfeed.FormatAtom, "<feed/>")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

// Package fs provides file-based storage for serialized feeds.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/obfeed"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Ensure FeedStore implements obfeed.FeedStore at compile time.
var _ obfeed.FeedStore = (*FeedStore)(nil)

// FeedStore writes feed documents into a directory. Each document is
// written to a temporary file first and renamed into place, so readers
// never see a partial feed.
type FeedStore struct {
	baseDir string
}

// NewFeedStore creates a FeedStore writing to baseDir. An empty baseDir
// means the current directory.
func NewFeedStore(baseDir string) *FeedStore {
	if baseDir == "" {
		baseDir = "."
	}
	return &FeedStore{baseDir: baseDir}
}

// Save writes document for the named site and returns the file path.
func (s *FeedStore) Save(ctx context.Context, name string, format obfeed.Format, document string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	filename, err := FileName(name, format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.baseDir, "."+filename+".*.tmp")
	if err != nil {
		return "", err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(document); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	path := filepath.Join(s.baseDir, filename)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}
	return path, nil
}

// FileName returns the feed file name for a site name.
// Example: "Les carnets d'Hélène", atom → feed-les-carnets-d-helene.xml
func FileName(name string, format obfeed.Format) (string, error) {
	slug := Slug(name)
	if slug == "" {
		return "", obfeed.Errorf(obfeed.EINVALID, "site name %q yields an empty file name", name)
	}
	switch format {
	case obfeed.FormatRSS:
		return "feed-" + slug + ".rss.xml", nil
	case obfeed.FormatAtom, "":
		return "feed-" + slug + ".xml", nil
	}
	return "", obfeed.Errorf(obfeed.EINVALID, "unknown feed format %q", format)
}

// Slug lowercases name, strips accents and replaces every run of other
// characters than letters and digits with a single hyphen.
func Slug(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			hyphen = false
			continue
		}
		if !hyphen && b.Len() > 0 {
			b.WriteByte('-')
			hyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

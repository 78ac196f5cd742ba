package pipeline

import (
	"regexp"
	"strings"

	"github.com/fwojciec/obfeed"
)

var _ obfeed.ArticleNormalizer = (*Normalizer)(nil)

// Footer patterns, e.g. "Posté par Hélène à 14:30 - Cuisine".
var (
	authorPattern = regexp.MustCompile(`Posté par (.+?) à`)
	timePattern   = regexp.MustCompile(` à (.+?) -`)
)

// Normalizer turns article candidates into feed entries. It holds no
// mutable state and is safe for concurrent use.
type Normalizer struct {
	// Months translates localized month names in date headers.
	Months *obfeed.MonthTable

	// Dates parses the combined "<date header> <clock>" string.
	Dates obfeed.DateParser
}

// NewNormalizer returns a Normalizer for French date headers.
func NewNormalizer(dates obfeed.DateParser) *Normalizer {
	return &Normalizer{Months: obfeed.FrenchMonths(), Dates: dates}
}

// Normalize returns entries for the candidates passing the validity gate,
// in candidate order, and a Drop listing every failed check for the rest.
func (n *Normalizer) Normalize(candidates []*obfeed.ArticleCandidate, description string) ([]*obfeed.Entry, []obfeed.Drop) {
	var entries []*obfeed.Entry
	var drops []obfeed.Drop
	for i, c := range candidates {
		entry, reasons := n.normalize(c, description)
		if len(reasons) > 0 {
			drops = append(drops, obfeed.Drop{
				Index:   i,
				Title:   c.Title,
				URL:     c.CanonicalURL,
				Reasons: reasons,
			})
			continue
		}
		entries = append(entries, entry)
	}
	return entries, drops
}

func (n *Normalizer) normalize(c *obfeed.ArticleCandidate, description string) (*obfeed.Entry, []obfeed.DropReason) {
	var reasons []obfeed.DropReason

	if c.Title == "" {
		reasons = append(reasons, obfeed.DropMissingTitle)
	}
	if strings.TrimSpace(c.BodyHTML) == "" {
		reasons = append(reasons, obfeed.DropMissingBody)
	}

	author := submatch(authorPattern, c.FooterText)
	if author == "" {
		reasons = append(reasons, obfeed.DropMissingAuthor)
	}

	clock := submatch(timePattern, c.FooterText)
	if clock == "" {
		reasons = append(reasons, obfeed.DropMissingTime)
	}
	if c.DateHeaderText == "" {
		reasons = append(reasons, obfeed.DropMissingDateHeader)
	}

	entry := &obfeed.Entry{
		Title:        c.Title,
		ID:           c.CanonicalURL,
		Link:         c.CanonicalURL,
		Description:  description,
		ContentHTML:  c.BodyHTML,
		AuthorName:   author,
		ThumbnailURL: c.ThumbnailURL,
	}

	if clock != "" && c.DateHeaderText != "" {
		day := n.Months.Translate(c.DateHeaderText)
		published, err := n.Dates.ParseDate(day + " " + clock)
		if err != nil {
			reasons = append(reasons, obfeed.DropUnparseableDate)
		} else {
			entry.PublishedAt = published
		}
	}

	if c.CanonicalURL == "" {
		reasons = append(reasons, obfeed.DropMissingURL)
	}

	if len(reasons) > 0 {
		return nil, reasons
	}
	if err := entry.Validate(); err != nil {
		return nil, []obfeed.DropReason{obfeed.DropUnparseableDate}
	}
	return entry, nil
}

func submatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

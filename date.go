package obfeed

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// DateParser parses free-form English date-time strings such as
// "3 March 2023 14:30".
type DateParser interface {
	ParseDate(s string) (time.Time, error)
}

// MonthTable maps localized month names to their English names.
// A MonthTable is immutable once built.
type MonthTable struct {
	names map[string]string
	re    *regexp.Regexp
}

// NewMonthTable builds a table from localized name to English name.
func NewMonthTable(names map[string]string) *MonthTable {
	t := &MonthTable{names: make(map[string]string, len(names))}
	keys := make([]string, 0, len(names))
	for k, v := range names {
		t.names[k] = v
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return t
	}

	// Longest first so that no name shadows a longer one sharing its prefix.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	t.re = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	return t
}

// FrenchMonths returns the table for French month names.
func FrenchMonths() *MonthTable {
	return NewMonthTable(map[string]string{
		"janvier":   "January",
		"février":   "February",
		"mars":      "March",
		"avril":     "April",
		"mai":       "May",
		"juin":      "June",
		"juillet":   "July",
		"août":      "August",
		"septembre": "September",
		"octobre":   "October",
		"novembre":  "November",
		"décembre":  "December",
	})
}

// Translate replaces the first localized month name in s with its English
// name. Text without a known month name is returned unchanged.
func (t *MonthTable) Translate(s string) string {
	if t == nil || t.re == nil {
		return s
	}
	loc := t.re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + t.names[s[loc[0]:loc[1]]] + s[loc[1]:]
}

// Len returns the number of month names in the table.
func (t *MonthTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

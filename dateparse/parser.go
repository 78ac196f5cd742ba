// Package dateparse implements obfeed.DateParser on top of
// github.com/araddon/dateparse.
package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
	"github.com/fwojciec/obfeed"
)

// DefaultTimezone is the location used for dates without an offset.
const DefaultTimezone = "Europe/Paris"

// Ensure Parser implements obfeed.DateParser at compile time.
var _ obfeed.DateParser = (*Parser)(nil)

// trailingClock matches a clock time at the end of a date string:
// "14:30", "14:30:05" or "14h30".
var trailingClock = regexp.MustCompile(`^(.*\S)\s+(\d{1,2})[:h](\d{2})(?::(\d{2}))?$`)

// Parser parses free-form English dates in a fixed location.
type Parser struct {
	loc *time.Location
}

// NewParser returns a Parser interpreting dates in loc.
// A nil loc means UTC.
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{loc: loc}
}

// NewParserIn returns a Parser for the named IANA time zone.
func NewParserIn(name string) (*Parser, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, obfeed.Errorf(obfeed.EINVALID, "unknown timezone %q", name)
	}
	return NewParser(loc), nil
}

// Location returns the location dates are interpreted in.
func (p *Parser) Location() *time.Location {
	return p.loc
}

// ParseDate parses s, e.g. "3 March 2023 14:30". The library does not read
// a clock after a full month name, so on failure a trailing clock is split
// off, the date parsed on its own, and the clock applied afterwards. Words
// before the first digit ("vendredi 3 March 2023") are ignored.
func (p *Parser) ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, obfeed.Errorf(obfeed.EINVALID, "empty date")
	}

	t, err := p.parse(s)
	if err == nil {
		return t, nil
	}
	if rest := stripLeadingWords(s); rest != s {
		if t, rerr := p.parse(rest); rerr == nil {
			return t, nil
		}
	}
	return time.Time{}, obfeed.Errorf(obfeed.EINVALID, "unparseable date %q: %v", s, err)
}

func (p *Parser) parse(s string) (time.Time, error) {
	t, err := dateparse.ParseIn(s, p.loc)
	if err == nil {
		return t, nil
	}

	m := trailingClock.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, err
	}

	day, err := dateparse.ParseIn(m[1], p.loc)
	if err != nil {
		return time.Time{}, err
	}

	hour, _ := strconv.Atoi(m[2])
	minute, _ := strconv.Atoi(m[3])
	second := 0
	if m[4] != "" {
		second, _ = strconv.Atoi(m[4])
	}
	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, fmt.Errorf("invalid clock %s:%s", m[2], m[3])
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, 0, p.loc), nil
}

// stripLeadingWords drops everything before the first digit of s.
func stripLeadingWords(s string) string {
	i := strings.IndexFunc(s, unicode.IsDigit)
	if i <= 0 {
		return s
	}
	return s[i:]
}

// Package datalayer recovers blog identity from the analytics data layer
// that the blog platform embeds in every page:
//
//	dataLayer = [{
//	    'blog_name' : 'Mon blog',
//	    'lang'      : 'fr-FR',
//	    'adblock'  : "__ads_loaded__" in window ? "No" : "Yes",
//	}];
//
// The snippet is a JavaScript object literal, not JSON. Repair rewrites it
// into JSON through a fixed sequence of named steps, each of which only
// handles a malformation observed in this template family.
package datalayer

import (
	"encoding/json"
	"strings"

	"github.com/fwojciec/obfeed"
)

// Marker identifies the script holding the data layer.
const Marker = "dataLayer = [{"

// assignment is the prefix stripped in front of the array literal.
const assignment = "dataLayer = "

// InjectedFields are keys whose values are JavaScript expressions rather
// than literals. They are removed before decoding.
var InjectedFields = []string{"adblock"}

// Layer holds the fields read from the first data layer element.
type Layer struct {
	BlogName string `json:"blog_name"`
	Lang     string `json:"lang"`
}

// Parse repairs and decodes the data layer found in script.
func Parse(script string) (*Layer, error) {
	repaired, err := Repair(script)
	if err != nil {
		return nil, err
	}
	return Decode(repaired)
}

// Repair captures the data layer array literal in script and rewrites it
// into JSON. The steps run in order; later steps rely on quoting having
// been normalized first.
func Repair(script string) (string, error) {
	s, ok := Capture(script)
	if !ok {
		return "", obfeed.Errorf(obfeed.EMISSINGMETADATA, "no %q assignment found", Marker)
	}
	s = NormalizeQuotes(s)
	for _, key := range InjectedFields {
		s = StripField(s, key)
	}
	return RemoveTrailingCommas(s), nil
}

// Decode parses repaired data layer JSON and returns its first element.
func Decode(repaired string) (*Layer, error) {
	var layers []Layer
	if err := json.Unmarshal([]byte(repaired), &layers); err != nil {
		return nil, obfeed.Errorf(obfeed.EMALFORMEDMETADATA, "decoding data layer: %v", err)
	}
	if len(layers) == 0 {
		return nil, obfeed.Errorf(obfeed.EMALFORMEDMETADATA, "data layer is empty")
	}
	return &layers[0], nil
}

// Capture returns the array literal assigned to dataLayer, from its opening
// bracket to the matching closing bracket. The assignment prefix and the
// statement terminator are left out. If the literal is never closed the rest
// of the script is returned with the terminator trimmed, so decoding fails
// later with a precise error.
func Capture(script string) (string, bool) {
	idx := strings.Index(script, Marker)
	if idx < 0 {
		return "", false
	}
	start := idx + len(assignment)

	depth := 0
	for i := start; i < len(script); i++ {
		switch c := script[i]; c {
		case '"', '\'':
			end := closingQuote(script, i)
			if end < 0 {
				return trimTerminator(script[start:]), true
			}
			i = end
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return script[start : i+1], true
			}
		}
	}
	return trimTerminator(script[start:]), true
}

func trimTerminator(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ";")
}

// NormalizeQuotes turns single-quoted strings into double-quoted strings.
// Double quotes inside them are escaped and escaped single quotes are
// unescaped. Double-quoted strings are copied untouched.
func NormalizeQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch quote {
		case 0:
			switch c {
			case '"':
				quote = '"'
				b.WriteByte(c)
			case '\'':
				quote = '\''
				b.WriteByte('"')
			default:
				b.WriteByte(c)
			}
		case '"':
			b.WriteByte(c)
			if c == '\\' && i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			} else if c == '"' {
				quote = 0
			}
		case '\'':
			switch c {
			case '\\':
				if i+1 >= len(s) {
					b.WriteByte(c)
					continue
				}
				i++
				if s[i] == '\'' {
					b.WriteByte('\'')
				} else {
					b.WriteByte(c)
					b.WriteByte(s[i])
				}
			case '"':
				b.WriteString(`\"`)
			case '\'':
				quote = 0
				b.WriteByte('"')
			default:
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}

// StripField removes every member named key, along with its value and the
// comma that follows it. The value may be any expression; it ends at the
// first comma or closing bracket outside strings and nested brackets.
// Input must use double-quoted keys (see NormalizeQuotes).
func StripField(s, key string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '"' && c != '\'' {
			b.WriteByte(c)
			continue
		}

		end := closingQuote(s, i)
		if end < 0 {
			b.WriteString(s[i:])
			break
		}

		if c == '"' && s[i+1:end] == key {
			colon := skipSpace(s, end+1)
			if colon < len(s) && s[colon] == ':' {
				stop := valueEnd(s, colon+1)
				if stop < len(s) && s[stop] == ',' {
					stop++
				}
				i = stop - 1
				continue
			}
		}

		b.WriteString(s[i : end+1])
		i = end
	}
	return b.String()
}

// RemoveTrailingCommas drops commas that directly precede a closing brace
// or bracket, ignoring whitespace in between.
func RemoveTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\'':
			end := closingQuote(s, i)
			if end < 0 {
				b.WriteString(s[i:])
				return b.String()
			}
			b.WriteString(s[i : end+1])
			i = end
		case ',':
			next := skipSpace(s, i+1)
			if next < len(s) && (s[next] == '}' || s[next] == ']') {
				continue
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// closingQuote returns the index of the quote closing the string that
// opens at s[open], or -1 if the string is unterminated.
func closingQuote(s string, open int) int {
	q := s[open]
	for i := open + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case q:
			return i
		}
	}
	return -1
}

// valueEnd returns the index of the comma or closing bracket ending the
// value that starts at s[from], or len(s).
func valueEnd(s string, from int) int {
	depth := 0
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '"', '\'':
			end := closingQuote(s, i)
			if end < 0 {
				return len(s)
			}
			i = end
		case '{', '[':
			depth++
		case '}', ']':
			if depth == 0 {
				return i
			}
			depth--
		case ',':
			if depth == 0 {
				return i
			}
		}
	}
	return len(s)
}

func skipSpace(s string, from int) int {
	for from < len(s) {
		switch s[from] {
		case ' ', '\t', '\n', '\r':
			from++
		default:
			return from
		}
	}
	return from
}

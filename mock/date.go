package mock

import (
	"time"

	"github.com/fwojciec/obfeed"
)

var _ obfeed.DateParser = (*DateParser)(nil)

// DateParser is a mock implementation of obfeed.DateParser.
type DateParser struct {
	ParseDateFn func(s string) (time.Time, error)
}

func (p *DateParser) ParseDate(s string) (time.Time, error) {
	return p.ParseDateFn(s)
}

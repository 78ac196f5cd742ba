package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/obfeed"
)

// Ensure LoggingExtractor implements obfeed.PageExtractor.
var _ obfeed.PageExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a PageExtractor with debug logging.
type LoggingExtractor struct {
	next   obfeed.PageExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next obfeed.PageExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was found.
func (e *LoggingExtractor) Extract(html string, pageURL string) (page *obfeed.Page, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", pageURL}
		if page != nil && page.Blog != nil {
			attrs = append(attrs,
				"blog", page.Blog.Title,
				"lang", page.Blog.Language,
				"articles", len(page.Articles),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html, pageURL)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/obfeed"
)

// Ensure LoggingFeedStore implements obfeed.FeedStore.
var _ obfeed.FeedStore = (*LoggingFeedStore)(nil)

// LoggingFeedStore wraps a FeedStore with logging.
type LoggingFeedStore struct {
	next   obfeed.FeedStore
	logger *slog.Logger
}

// NewLoggingFeedStore creates a new LoggingFeedStore.
func NewLoggingFeedStore(next obfeed.FeedStore, logger *slog.Logger) *LoggingFeedStore {
	return &LoggingFeedStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingFeedStore) Save(ctx context.Context, name string, format obfeed.Format, document string) (path string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("save feed",
			"name", name,
			"format", format,
			"path", path,
			"bytes", len(document),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, name, format, document)
}

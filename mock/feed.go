package mock

import (
	"context"

	"github.com/fwojciec/obfeed"
)

var _ obfeed.FeedSerializer = (*FeedSerializer)(nil)

// FeedSerializer is a mock implementation of obfeed.FeedSerializer.
type FeedSerializer struct {
	SerializeFn func(feed *obfeed.Feed, format obfeed.Format) (string, error)
}

func (s *FeedSerializer) Serialize(feed *obfeed.Feed, format obfeed.Format) (string, error) {
	return s.SerializeFn(feed, format)
}

var _ obfeed.FeedStore = (*FeedStore)(nil)

// FeedStore is a mock implementation of obfeed.FeedStore.
type FeedStore struct {
	SaveFn func(ctx context.Context, name string, format obfeed.Format, document string) (string, error)
}

func (s *FeedStore) Save(ctx context.Context, name string, format obfeed.Format, document string) (string, error) {
	return s.SaveFn(ctx, name, format, document)
}

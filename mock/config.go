package mock

import (
	"context"

	"github.com/fwojciec/obfeed"
)

var _ obfeed.ConfigLoader = (*ConfigLoader)(nil)

// ConfigLoader is a mock implementation of obfeed.ConfigLoader.
type ConfigLoader struct {
	LoadFn func(ctx context.Context, path string) (*obfeed.Config, error)
}

func (l *ConfigLoader) Load(ctx context.Context, path string) (*obfeed.Config, error) {
	return l.LoadFn(ctx, path)
}

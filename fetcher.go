package obfeed

import "context"

// Fetcher retrieves the raw HTML of a blog page.
type Fetcher interface {
	// Fetch returns the body of url. A non-success response is an EFETCH
	// error. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// HostLimiter spaces out requests made to the same host.
type HostLimiter interface {
	// Wait blocks until a request to host is allowed or ctx is done.
	Wait(ctx context.Context, host string) error
}

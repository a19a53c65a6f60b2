package media

import "context"

// Fetcher defines the interface for the preview service.
type Fetcher interface {
	SetUpdateCallback(func(Preview))

	// Request starts a background load unless the source is cached or
	// already in flight
	Request(ctx context.Context, source string)

	// Fetch loads a source synchronously
	Fetch(ctx context.Context, source string) (Preview, error)

	Cached(source string) (Preview, bool)

	// SetMaxParallel sets how many fetches may run at once
	SetMaxParallel(max int)
}

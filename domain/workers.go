package domain

import "context"

// RefreshWorker rebuilds cached comment lists in the background.
type RefreshWorker interface {
	Start(ctx context.Context)

	// Send queues the article for a cache refresh. Repeated sends inside one
	// batch collapse into a single refresh.
	Send(articleID int64)
}

package repository

import "context"

// BlockStatsRepository stores the lifetime ad-block counter.
// Writes are best-effort; losing increments on crash is acceptable.
type BlockStatsRepository interface {
	// Total returns the lifetime number of blocked requests.
	Total(ctx context.Context) (int64, error)

	// Add increments the lifetime counter by n.
	Add(ctx context.Context, n int64) error
}

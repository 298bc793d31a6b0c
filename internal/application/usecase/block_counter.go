package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bnema/netguard/internal/domain/repository"
	"github.com/bnema/netguard/internal/logging"
)

// DefaultFlushInterval is how often pending lifetime blocks are written.
const DefaultFlushInterval = 5 * time.Second

// BlockCounter accumulates lifetime ad-block hits in memory and writes them
// to the stats repository in the background, keeping storage off the request path.
// Increments can be lost on crash.
type BlockCounter struct {
	statsRepo repository.BlockStatsRepository
	interval  time.Duration
	pending   atomic.Int64
}

// NewBlockCounter creates a counter flushing every interval.
func NewBlockCounter(statsRepo repository.BlockStatsRepository, interval time.Duration) *BlockCounter {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}
	return &BlockCounter{statsRepo: statsRepo, interval: interval}
}

// Increment records one blocked request.
func (c *BlockCounter) Increment() {
	c.pending.Add(1)
}

// Pending returns increments not yet written.
func (c *BlockCounter) Pending() int64 {
	return c.pending.Load()
}

// Flush writes pending increments. On failure they are kept for the next flush.
func (c *BlockCounter) Flush(ctx context.Context) error {
	n := c.pending.Swap(0)
	if n == 0 || c.statsRepo == nil {
		return nil
	}
	if err := c.statsRepo.Add(ctx, n); err != nil {
		c.pending.Add(n)
		return fmt.Errorf("flush %d blocked requests: %w", n, err)
	}
	return nil
}

// Run flushes periodically until ctx is done, then flushes one last time.
func (c *BlockCounter) Run(ctx context.Context) {
	log := logging.FromContext(ctx).With().Str("component", "block-counter").Logger()
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Flush(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to flush block counter")
			}
		case <-ctx.Done():
			if err := c.Flush(context.WithoutCancel(ctx)); err != nil {
				log.Warn().Err(err).Msg("failed final block counter flush")
			}
			return
		}
	}
}

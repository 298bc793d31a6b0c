package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/netguard/internal/domain/repository"
	"github.com/bnema/netguard/internal/infrastructure/persistence/sqlite/sqlc"
)

type blockStatsRepo struct {
	queries *sqlc.Queries
}

// NewBlockStatsRepository creates a new SQLite-backed lifetime block counter.
func NewBlockStatsRepository(db *sql.DB) repository.BlockStatsRepository {
	return &blockStatsRepo{queries: sqlc.New(db)}
}

func (r *blockStatsRepo) Total(ctx context.Context) (int64, error) {
	total, err := r.queries.GetTotalBlocked(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("read blocked total: %w", err)
	}
	return total, nil
}

func (r *blockStatsRepo) Add(ctx context.Context, n int64) error {
	if n <= 0 {
		return nil
	}
	return r.queries.AddBlocked(ctx, sqlc.AddBlockedParams{
		TotalBlocked: n,
		UpdatedAt:    time.Now().Unix(),
	})
}

package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/bnema/netguard/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockStatsRepository_AddAndTotal(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := sqlite.NewBlockStatsRepository(db)

	total, err := repo.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	require.NoError(t, repo.Add(ctx, 3))
	require.NoError(t, repo.Add(ctx, 4))

	total, err = repo.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
}

func TestBlockStatsRepository_IgnoresNonPositive(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := sqlite.NewBlockStatsRepository(db)

	require.NoError(t, repo.Add(ctx, 0))
	require.NoError(t, repo.Add(ctx, -5))

	total, err := repo.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestLazyRepositories_ShareProvider(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "netguard.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	stats := sqlite.NewLazyBlockStatsRepository(lazy)
	perms := sqlite.NewLazyPermissionRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, stats.Add(ctx, 2))
	assert.True(t, lazy.IsInitialized())

	total, err := stats.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	records, err := perms.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLazyRepositories_PropagateInitError(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB("")

	_, err := sqlite.NewLazyBlockStatsRepository(lazy).Total(ctx)
	assert.Error(t, err)

	_, err = sqlite.NewLazyPermissionRepository(lazy).List(ctx)
	assert.Error(t, err)
}

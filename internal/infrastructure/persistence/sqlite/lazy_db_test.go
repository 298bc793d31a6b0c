package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/netguard/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "netguard.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	assert.False(t, lazy.IsInitialized())

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	assert.True(t, lazy.IsInitialized())

	var total int64
	require.NoError(t, db.QueryRowContext(ctx, "SELECT total_blocked FROM adblock_stats WHERE id = 1").Scan(&total))
	assert.Zero(t, total)
}

func TestLazyDB_ConcurrentCallersShareOneConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "netguard.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	const callers = 10
	dbs := make([]*sql.DB, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "netguard.sqlite"))

	assert.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_Path(t *testing.T) {
	lazy := sqlite.NewLazyDB("/var/lib/netguard/netguard.sqlite")

	assert.Equal(t, "/var/lib/netguard/netguard.sqlite", lazy.Path())
}

func TestLazyDB_InitErrorIsSticky(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(ctx)
	require.Error(t, err)

	_, err = lazy.DB(ctx)
	assert.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}

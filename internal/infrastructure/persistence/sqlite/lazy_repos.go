// Package sqlite provides SQLite implementations of domain repositories.
//
// The lazy wrappers below implement the same repository interfaces as their
// eager counterparts and open the database on first use.
package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/netguard/internal/application/port"
	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/domain/repository"
)

// LazyPermissionRepository wraps a permission repository with lazy database initialization.
type LazyPermissionRepository struct {
	provider port.DatabaseProvider
	repo     repository.PermissionRepository
	once     sync.Once
	initErr  error
}

// NewLazyPermissionRepository creates a lazy-loading permission repository.
func NewLazyPermissionRepository(provider port.DatabaseProvider) repository.PermissionRepository {
	return &LazyPermissionRepository{provider: provider}
}

func (r *LazyPermissionRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewPermissionRepository(db)
	})
	return r.initErr
}

func (r *LazyPermissionRepository) Get(ctx context.Context, origin entity.Origin, kind entity.PermissionKind) (*entity.PermissionRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, origin, kind)
}

func (r *LazyPermissionRepository) Set(ctx context.Context, record *entity.PermissionRecord) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Set(ctx, record)
}

func (r *LazyPermissionRepository) Delete(ctx context.Context, origin entity.Origin, kind entity.PermissionKind) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, origin, kind)
}

func (r *LazyPermissionRepository) ListByOrigin(ctx context.Context, origin entity.Origin) ([]*entity.PermissionRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.ListByOrigin(ctx, origin)
}

func (r *LazyPermissionRepository) List(ctx context.Context) ([]*entity.PermissionRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}

// LazyBlockStatsRepository wraps a block stats repository with lazy database initialization.
type LazyBlockStatsRepository struct {
	provider port.DatabaseProvider
	repo     repository.BlockStatsRepository
	once     sync.Once
	initErr  error
}

// NewLazyBlockStatsRepository creates a lazy-loading block stats repository.
func NewLazyBlockStatsRepository(provider port.DatabaseProvider) repository.BlockStatsRepository {
	return &LazyBlockStatsRepository{provider: provider}
}

func (r *LazyBlockStatsRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewBlockStatsRepository(db)
	})
	return r.initErr
}

func (r *LazyBlockStatsRepository) Total(ctx context.Context) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.Total(ctx)
}

func (r *LazyBlockStatsRepository) Add(ctx context.Context, n int64) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Add(ctx, n)
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/domain/repository"
	"github.com/bnema/netguard/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/netguard/internal/logging"
)

type permissionRepo struct {
	queries *sqlc.Queries
}

// NewPermissionRepository creates a new SQLite-backed permission repository.
func NewPermissionRepository(db *sql.DB) repository.PermissionRepository {
	return &permissionRepo{queries: sqlc.New(db)}
}

func (r *permissionRepo) Get(ctx context.Context, origin entity.Origin, kind entity.PermissionKind) (*entity.PermissionRecord, error) {
	row, err := r.queries.GetPermission(ctx, sqlc.GetPermissionParams{
		Origin:         origin.String(),
		PermissionKind: string(kind),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission %s for %s: %w", kind, origin, err)
	}
	return permissionFromRow(row), nil
}

func (r *permissionRepo) Set(ctx context.Context, record *entity.PermissionRecord) error {
	if record == nil {
		return errors.New("cannot set nil permission record")
	}
	if !record.Origin.Known() {
		return entity.ErrUnknownOrigin
	}

	logging.FromContext(ctx).Debug().
		Str("origin", record.Origin.String()).
		Str("kind", string(record.Kind)).
		Bool("allowed", record.Allowed).
		Msg("saving permission")

	return r.queries.SetPermission(ctx, sqlc.SetPermissionParams{
		Origin:         record.Origin.String(),
		PermissionKind: string(record.Kind),
		Allowed:        record.Allowed,
		UpdatedAt:      record.UpdatedAt,
	})
}

func (r *permissionRepo) Delete(ctx context.Context, origin entity.Origin, kind entity.PermissionKind) error {
	logging.FromContext(ctx).Debug().
		Str("origin", origin.String()).
		Str("kind", string(kind)).
		Msg("deleting permission")

	return r.queries.DeletePermission(ctx, sqlc.DeletePermissionParams{
		Origin:         origin.String(),
		PermissionKind: string(kind),
	})
}

func (r *permissionRepo) ListByOrigin(ctx context.Context, origin entity.Origin) ([]*entity.PermissionRecord, error) {
	rows, err := r.queries.ListPermissionsByOrigin(ctx, origin.String())
	if err != nil {
		return nil, fmt.Errorf("list permissions for %s: %w", origin, err)
	}
	return permissionsFromRows(rows), nil
}

func (r *permissionRepo) List(ctx context.Context) ([]*entity.PermissionRecord, error) {
	rows, err := r.queries.ListPermissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	return permissionsFromRows(rows), nil
}

func permissionsFromRows(rows []sqlc.SitePermission) []*entity.PermissionRecord {
	records := make([]*entity.PermissionRecord, len(rows))
	for i, row := range rows {
		records[i] = permissionFromRow(row)
	}
	return records
}

func permissionFromRow(row sqlc.SitePermission) *entity.PermissionRecord {
	return &entity.PermissionRecord{
		Origin:    entity.Origin(row.Origin),
		Kind:      entity.PermissionKind(row.PermissionKind),
		Allowed:   row.Allowed,
		UpdatedAt: row.UpdatedAt,
	}
}

package repository

import (
	"context"

	"github.com/bnema/netguard/internal/domain/entity"
)

// PermissionRepository defines operations for remembered site permissions.
// Only persistent sessions write here; incognito decisions stay in memory.
type PermissionRepository interface {
	// Get retrieves the record for an origin and kind.
	// Returns nil if no record exists (treat as "not decided").
	Get(ctx context.Context, origin entity.Origin, kind entity.PermissionKind) (*entity.PermissionRecord, error)

	// Set saves or updates a record.
	Set(ctx context.Context, record *entity.PermissionRecord) error

	// Delete removes the record for an origin and kind.
	Delete(ctx context.Context, origin entity.Origin, kind entity.PermissionKind) error

	// ListByOrigin retrieves all records for an origin.
	ListByOrigin(ctx context.Context, origin entity.Origin) ([]*entity.PermissionRecord, error)

	// List retrieves every record, ordered by origin then kind.
	List(ctx context.Context) ([]*entity.PermissionRecord, error)
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/domain/repository"
	neturl "github.com/bnema/netguard/internal/domain/url"
	"github.com/bnema/netguard/internal/logging"
)

// ManagePermissionsUseCase edits remembered site permissions (settings page, CLI).
type ManagePermissionsUseCase struct {
	permRepo repository.PermissionRepository
}

// NewManagePermissionsUseCase creates a new ManagePermissionsUseCase.
func NewManagePermissionsUseCase(permRepo repository.PermissionRepository) *ManagePermissionsUseCase {
	return &ManagePermissionsUseCase{permRepo: permRepo}
}

// List returns remembered decisions, for one site when siteURL is non-empty.
func (uc *ManagePermissionsUseCase) List(ctx context.Context, siteURL string) ([]*entity.PermissionRecord, error) {
	if siteURL == "" {
		records, err := uc.permRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list permissions: %w", err)
		}
		return records, nil
	}

	origin, err := parseOrigin(siteURL)
	if err != nil {
		return nil, err
	}
	records, err := uc.permRepo.ListByOrigin(ctx, origin)
	if err != nil {
		return nil, fmt.Errorf("list permissions for %s: %w", origin, err)
	}
	return records, nil
}

// Set remembers allowed for the site and capability.
func (uc *ManagePermissionsUseCase) Set(ctx context.Context, siteURL, permission string, allowed bool) (*entity.PermissionRecord, error) {
	origin, kind, err := parseTarget(siteURL, permission)
	if err != nil {
		return nil, err
	}

	record := &entity.PermissionRecord{
		Origin:    origin,
		Kind:      kind,
		Allowed:   allowed,
		UpdatedAt: time.Now().Unix(),
	}
	if err := uc.permRepo.Set(ctx, record); err != nil {
		return nil, fmt.Errorf("save permission %s for %s: %w", kind, origin, err)
	}

	logging.FromContext(ctx).Info().
		Str("origin", origin.String()).
		Str("kind", string(kind)).
		Bool("allowed", allowed).
		Msg("permission saved")
	return record, nil
}

// Revoke forgets the decision so the site is asked again.
func (uc *ManagePermissionsUseCase) Revoke(ctx context.Context, siteURL, permission string) error {
	origin, kind, err := parseTarget(siteURL, permission)
	if err != nil {
		return err
	}
	if err := uc.permRepo.Delete(ctx, origin, kind); err != nil {
		return fmt.Errorf("revoke permission %s for %s: %w", kind, origin, err)
	}
	return nil
}

func parseTarget(siteURL, permission string) (entity.Origin, entity.PermissionKind, error) {
	origin, err := parseOrigin(siteURL)
	if err != nil {
		return "", "", err
	}
	kind, ok := entity.ParsePermissionKind(permission)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", entity.ErrUnknownPermission, permission)
	}
	return origin, kind, nil
}

func parseOrigin(siteURL string) (entity.Origin, error) {
	origin := neturl.OriginOf(siteURL)
	if !origin.Known() {
		return "", fmt.Errorf("%w: %q", entity.ErrUnknownOrigin, siteURL)
	}
	return origin, nil
}

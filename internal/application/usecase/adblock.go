package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/netguard/internal/application/port"
	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/domain/repository"
	"github.com/bnema/netguard/internal/logging"
)

// AdblockUseCase serves the shield popover: counters and the on/off switch.
type AdblockUseCase struct {
	registry  *SessionRegistry
	statsRepo repository.BlockStatsRepository
	lifetime  *BlockCounter
	settings  port.SettingsStore
}

// NewAdblockUseCase creates a new AdblockUseCase.
func NewAdblockUseCase(
	registry *SessionRegistry,
	statsRepo repository.BlockStatsRepository,
	lifetime *BlockCounter,
	settings port.SettingsStore,
) *AdblockUseCase {
	return &AdblockUseCase{
		registry:  registry,
		statsRepo: statsRepo,
		lifetime:  lifetime,
		settings:  settings,
	}
}

// GetStats returns the session and lifetime block counts.
// A failing stats store reports a lifetime total of zero rather than an error.
func (uc *AdblockUseCase) GetStats(ctx context.Context) entity.AdblockStats {
	stats := entity.AdblockStats{
		Enabled: uc.settings.Snapshot().Privacy.AdBlockEnabled,
	}
	if uc.registry != nil {
		stats.SessionBlocked = uc.registry.SessionBlockedTotal()
	}

	if uc.statsRepo != nil {
		total, err := uc.statsRepo.Total(ctx)
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to read lifetime block count")
		} else {
			stats.TotalBlocked = total
		}
	}
	if uc.lifetime != nil {
		stats.TotalBlocked += uc.lifetime.Pending()
	}
	return stats
}

// Toggle switches ad blocking and applies it to live sessions immediately.
// It returns the resulting state.
func (uc *AdblockUseCase) Toggle(ctx context.Context, enabled bool) (bool, error) {
	if err := uc.settings.SetAdBlockEnabled(ctx, enabled); err != nil {
		return uc.settings.Snapshot().Privacy.AdBlockEnabled, fmt.Errorf("toggle ad blocking: %w", err)
	}

	current := uc.settings.Snapshot()
	if uc.registry != nil {
		uc.registry.ApplySettings(current)
	}

	logging.FromContext(ctx).Info().Bool("enabled", current.Privacy.AdBlockEnabled).Msg("ad blocking toggled")
	return current.Privacy.AdBlockEnabled, nil
}

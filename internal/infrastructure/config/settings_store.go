package config

import (
	"context"
	"maps"
	"time"

	"github.com/bnema/netguard/internal/application/port"
	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/logging"
)

var _ port.SettingsStore = (*Manager)(nil)

// Snapshot implements port.SettingsStore.
func (m *Manager) Snapshot() port.Settings {
	return SettingsFromConfig(m.Get())
}

// SetAdBlockEnabled implements port.SettingsStore by rewriting content_filtering.enabled.
func (m *Manager) SetAdBlockEnabled(ctx context.Context, enabled bool) error {
	cfg := m.Get()
	if cfg.ContentFiltering.Enabled == enabled {
		return nil
	}
	cfg.ContentFiltering.Enabled = enabled

	logging.FromContext(ctx).Info().Bool("enabled", enabled).Msg("saving ad-block setting")
	return m.Save(cfg)
}

// SettingsFromConfig extracts the mediation-layer settings from a full config.
func SettingsFromConfig(cfg *Config) port.Settings {
	return port.Settings{
		Privacy: entity.PrivacyFlags{
			AdBlockEnabled:         cfg.ContentFiltering.Enabled,
			HTTPSUpgradeEnabled:    cfg.Privacy.HTTPSUpgrade,
			DoNotTrack:             cfg.Privacy.DoNotTrack,
			BlockThirdPartyCookies: cfg.Privacy.BlockThirdPartyCookies,
			FingerprintProtection:  cfg.Privacy.FingerprintProtection,
		},
		UserAgent:   cfg.Privacy.UserAgent,
		ClientHints: maps.Clone(cfg.Privacy.ClientHints),
	}
}

// FlushInterval returns stats.flush_interval_ms as a duration.
func (c *Config) FlushInterval() time.Duration {
	return time.Duration(c.Stats.FlushIntervalMs) * time.Millisecond
}

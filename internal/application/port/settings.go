package port

import (
	"context"

	"github.com/bnema/netguard/internal/domain/entity"
)

// Settings is the slice of global settings the mediation layer reads.
type Settings struct {
	Privacy     entity.PrivacyFlags
	UserAgent   string
	ClientHints map[string]string
}

// SettingsStore provides read access to current settings and the few writes
// the UI entry points need.
type SettingsStore interface {
	// Snapshot returns a copy of the current settings.
	Snapshot() Settings

	// SetAdBlockEnabled persists the ad-block switch.
	SetAdBlockEnabled(ctx context.Context, enabled bool) error
}

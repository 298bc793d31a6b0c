package entity

import (
	"errors"
	"strings"
)

// ErrInvalidPartition is returned for empty or malformed partition names.
var ErrInvalidPartition = errors.New("invalid partition name")

// SessionKind distinguishes durable partitions from ephemeral ones.
type SessionKind string

const (
	SessionPersistent SessionKind = "persistent"
	SessionIncognito  SessionKind = "incognito"
)

// IncognitoPartition is the conventional name of the incognito partition.
const IncognitoPartition = "incognito"

// DefaultPartition is the durable partition used when none is given.
const DefaultPartition = "persist:netguard"

// KindForPartition derives the session kind from the partition naming convention.
// "incognito" and "incognito:<anything>" are incognito, everything else persists.
func KindForPartition(name string) SessionKind {
	if name == IncognitoPartition || strings.HasPrefix(name, IncognitoPartition+":") {
		return SessionIncognito
	}
	return SessionPersistent
}

// ValidatePartition rejects names that cannot key a session.
func ValidatePartition(name string) error {
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, "|\n\r") {
		return ErrInvalidPartition
	}
	return nil
}

// PrivacyFlags are the per-session switches sourced from settings.
type PrivacyFlags struct {
	AdBlockEnabled         bool
	HTTPSUpgradeEnabled    bool
	DoNotTrack             bool
	BlockThirdPartyCookies bool
	FingerprintProtection  bool
}

// SessionConfig is the immutable policy snapshot a request is evaluated against.
// A new value replaces the old one when settings change.
type SessionConfig struct {
	Partition string
	Kind      SessionKind
	Flags     PrivacyFlags

	// UserAgent overrides the engine's user agent when non-empty.
	UserAgent string
	// ClientHints are sent alongside the user agent override (Sec-CH-UA*).
	ClientHints map[string]string
}

// IsIncognito reports whether nothing from this session may be persisted.
func (c SessionConfig) IsIncognito() bool {
	return c.Kind == SessionIncognito
}

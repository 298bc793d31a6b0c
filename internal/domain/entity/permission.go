package entity

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownPermission is returned for capability names the broker does not handle.
	ErrUnknownPermission = errors.New("unknown permission kind")
	// ErrUnknownOrigin is returned when no origin can be derived from a URL.
	ErrUnknownOrigin = errors.New("cannot determine origin")
)

// PermissionKind is a capability a page can ask the browser for.
type PermissionKind string

const (
	PermissionGeolocation       PermissionKind = "geolocation"
	PermissionNotifications     PermissionKind = "notifications"
	PermissionMedia             PermissionKind = "media"
	PermissionClipboardRead     PermissionKind = "clipboard-read"
	PermissionClipboardWrite    PermissionKind = "clipboard-write"
	PermissionDisplayCapture    PermissionKind = "display-capture"
	PermissionPointerLock       PermissionKind = "pointer-lock"
	PermissionFullscreen        PermissionKind = "fullscreen"
	PermissionPersistentStorage PermissionKind = "persistent-storage"
)

// AllPermissionKinds lists every kind the broker knows how to handle.
var AllPermissionKinds = []PermissionKind{
	PermissionGeolocation,
	PermissionNotifications,
	PermissionMedia,
	PermissionClipboardRead,
	PermissionClipboardWrite,
	PermissionDisplayCapture,
	PermissionPointerLock,
	PermissionFullscreen,
	PermissionPersistentStorage,
}

// engineAliases maps names the page engine uses to our kinds.
var engineAliases = map[string]PermissionKind{
	"pointerlock":               PermissionPointerLock,
	"clipboard-sanitized-write": PermissionClipboardWrite,
	"notification":              PermissionNotifications,
}

// ParsePermissionKind normalises an engine permission name.
// ok is false for capabilities the broker does not know; those are always denied.
func ParsePermissionKind(name string) (PermissionKind, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := engineAliases[n]; ok {
		return k, true
	}
	k := PermissionKind(n)
	return k, k.Valid()
}

// Valid reports whether k is one of the known kinds.
func (k PermissionKind) Valid() bool {
	for _, known := range AllPermissionKinds {
		if k == known {
			return true
		}
	}
	return false
}

// IsAutoGranted is true for kinds that are never prompted.
// Denying persistent storage risks silent data eviction.
func (k PermissionKind) IsAutoGranted() bool {
	return k == PermissionPersistentStorage
}

// DisplayName returns the label shown in the permission prompt.
func (k PermissionKind) DisplayName() string {
	switch k {
	case PermissionMedia:
		return "Camera / Microphone"
	case PermissionGeolocation:
		return "Location"
	case PermissionNotifications:
		return "Notifications"
	case PermissionClipboardRead:
		return "Clipboard Read"
	case PermissionClipboardWrite:
		return "Clipboard Write"
	case PermissionDisplayCapture:
		return "Screen Capture"
	case PermissionPointerLock:
		return "Pointer Lock"
	case PermissionFullscreen:
		return "Fullscreen"
	case PermissionPersistentStorage:
		return "Persistent Storage"
	default:
		return string(k)
	}
}

// PermissionRecord is a remembered decision for one origin and kind.
type PermissionRecord struct {
	Origin    Origin
	Kind      PermissionKind
	Allowed   bool
	UpdatedAt int64 // Unix seconds
}

// PermissionDecision is the outcome of a check or prompt.
type PermissionDecision struct {
	Origin    Origin
	Kind      PermissionKind
	Allowed   bool
	Persisted bool
}

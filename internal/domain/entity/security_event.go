package entity

import (
	"time"

	"github.com/google/uuid"
)

// SecurityEventKind categorises a security notification.
type SecurityEventKind string

const (
	SecurityEventCertificate       SecurityEventKind = "certificate"
	SecurityEventSafeBrowsing      SecurityEventKind = "safe-browsing"
	SecurityEventDangerousDownload SecurityEventKind = "dangerous-download"
	SecurityEventPopupBlocked      SecurityEventKind = "popup-blocked"
)

// maxEventURLLen bounds URLs carried in events shown in banners.
const maxEventURLLen = 100

// SecurityEvent is a fire-and-forget notification for the UI.
type SecurityEvent struct {
	ID        string            `json:"id"`
	Kind      SecurityEventKind `json:"type"`
	Partition string            `json:"partition,omitempty"`
	Incognito bool              `json:"incognito,omitempty"`
	URL       string            `json:"url,omitempty"`
	Detail    map[string]string `json:"detail,omitempty"`
	At        time.Time         `json:"at"`
}

// NewSecurityEvent stamps a new event with an ID and time.
func NewSecurityEvent(kind SecurityEventKind, rawURL string, detail map[string]string) SecurityEvent {
	return SecurityEvent{
		ID:     uuid.NewString(),
		Kind:   kind,
		URL:    TruncateURL(rawURL, maxEventURLLen),
		Detail: detail,
		At:     time.Now(),
	}
}

// TruncateURL cuts s to at most n runes.
func TruncateURL(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

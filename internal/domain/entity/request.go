package entity

import "net/http"

// ResourceType is the engine's classification of what a request loads.
type ResourceType string

const (
	ResourceMainFrame ResourceType = "mainFrame"
	ResourceSubFrame  ResourceType = "subFrame"
	ResourceScript    ResourceType = "script"
	ResourceImage     ResourceType = "image"
	ResourceXHR       ResourceType = "xhr"
	ResourceOther     ResourceType = "other"
)

// Request is the engine's view of one outbound request.
type Request struct {
	URL          string
	Method       string
	ResourceType ResourceType
	// TopLevelURL is the document that initiated the request, when known.
	TopLevelURL string
	Headers     http.Header
}

// Action is what the engine should do with a request.
type Action string

const (
	ActionAllow    Action = "allow"
	ActionCancel   Action = "cancel"
	ActionRedirect Action = "redirect"
)

// Stage records which pipeline step settled a request.
type Stage string

const (
	StagePassed           Stage = "passed"
	StageInternal         Stage = "internal"
	StageRejectedProtocol Stage = "rejected-protocol"
	StageRejectedUnsafe   Stage = "rejected-unsafe"
	StageUpgraded         Stage = "upgraded"
	StageBlockedAsAd      Stage = "blocked-ad"
)

// Verdict is the single decision returned for a request.
type Verdict struct {
	Action      Action
	Stage       Stage
	RedirectURL string
	// Reason carries the matched safe-browsing signature for StageRejectedUnsafe.
	Reason string
	// Headers is the header set to send when Action is ActionAllow.
	Headers http.Header
}

// Cancelled reports whether the request must not proceed.
func (v Verdict) Cancelled() bool {
	return v.Action == ActionCancel
}

// PopupAction is the decision for a window.open request.
type PopupAction string

const (
	PopupDeny      PopupAction = "deny"
	PopupOpenInTab PopupAction = "open-in-tab"
)

// DownloadVerdict describes a download the engine is about to start.
type DownloadVerdict struct {
	Filename  string
	Extension string
	Dangerous bool
}

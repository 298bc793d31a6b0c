package entity

// AdblockStats is what the UI shows in the shield popover.
type AdblockStats struct {
	SessionBlocked int64 `json:"sessionBlockedCount"`
	TotalBlocked   int64 `json:"totalBlocked"`
	Enabled        bool  `json:"enabled"`
}

// SecurityCheck is one line of the security posture report.
type SecurityCheck struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// SecurityPosture summarises which protections are active.
type SecurityPosture struct {
	Checks   []SecurityCheck `json:"checks"`
	Score    int             `json:"score"`
	MaxScore int             `json:"maxScore"`
	Grade    string          `json:"grade"`
}

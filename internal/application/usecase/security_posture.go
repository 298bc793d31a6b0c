package usecase

import (
	"github.com/bnema/netguard/internal/application/port"
	"github.com/bnema/netguard/internal/domain/entity"
)

// GetSecurityPosture lists the protections and how many are active.
// Protocol filtering and safe browsing cannot be turned off and always count.
func GetSecurityPosture(settings port.Settings) entity.SecurityPosture {
	p := settings.Privacy
	checks := []entity.SecurityCheck{
		{Name: "HTTPS upgrade", Enabled: p.HTTPSUpgradeEnabled},
		{Name: "Ad and tracker blocking", Enabled: p.AdBlockEnabled},
		{Name: "Do Not Track", Enabled: p.DoNotTrack},
		{Name: "Fingerprint protection", Enabled: p.FingerprintProtection},
		{Name: "Third-party cookie blocking", Enabled: p.BlockThirdPartyCookies},
		{Name: "Dangerous protocol filtering", Enabled: true},
		{Name: "Safe browsing", Enabled: true},
	}

	score := 0
	for _, c := range checks {
		if c.Enabled {
			score++
		}
	}
	return entity.SecurityPosture{
		Checks:   checks,
		Score:    score,
		MaxScore: len(checks),
		Grade:    grade(score, len(checks)),
	}
}

func grade(score, total int) string {
	ratio := float64(score) / float64(total)
	switch {
	case ratio >= 0.9:
		return "A+"
	case ratio >= 0.7:
		return "A"
	case ratio >= 0.5:
		return "B"
	default:
		return "C"
	}
}

package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// OnOffBadge renders "on" in the success color and "off" muted.
func (t *Theme) OnOffBadge(on bool) string {
	if on {
		return t.StatusBadge("on", t.Background, t.Success)
	}
	return t.MutedBadge("off")
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	return relativeTime(tm, time.Now())
}

func relativeTime(tm, now time.Time) string {
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return ago(int(diff.Minutes()), "m")
	case diff < 24*time.Hour:
		return ago(int(diff.Hours()), "h")
	case diff < 30*24*time.Hour:
		return ago(int(diff.Hours()/24), "d")
	case diff < 365*24*time.Hour:
		return ago(int(diff.Hours()/(24*30)), "mo")
	default:
		return ago(int(diff.Hours()/(24*365)), "y")
	}
}

func ago(n int, unit string) string {
	return fmt.Sprintf("%d%s ago", n, unit)
}

package styles

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/netguard/internal/domain/entity"
)

// Verdict renders the outcome of a request decision.
func (t *Theme) Verdict(rawURL string, v entity.Verdict) string {
	var b strings.Builder

	b.WriteString(t.actionBadge(v.Action))
	b.WriteString(" ")
	b.WriteString(t.Normal.Render(rawURL))
	b.WriteString("\n")
	b.WriteString(t.line("stage", string(v.Stage)))
	if v.RedirectURL != "" {
		b.WriteString(t.line("redirect", v.RedirectURL))
	}
	if v.Reason != "" {
		b.WriteString(t.line("reason", v.Reason))
	}
	for _, name := range slices.Sorted(maps.Keys(v.Headers)) {
		b.WriteString(t.line(name, strings.Join(v.Headers[name], ", ")))
	}
	return b.String()
}

func (t *Theme) actionBadge(a entity.Action) string {
	switch a {
	case entity.ActionCancel:
		return t.StatusBadge("BLOCK", t.Background, t.Error)
	case entity.ActionRedirect:
		return t.StatusBadge("REDIRECT", t.Background, t.Warning)
	default:
		return t.StatusBadge("ALLOW", t.Background, t.Success)
	}
}

func (t *Theme) line(key, value string) string {
	return fmt.Sprintf("  %s %s\n", t.Subtle.Render(key+":"), value)
}

// Permissions renders stored permission decisions as a table.
func (t *Theme) Permissions(records []*entity.PermissionRecord) string {
	if len(records) == 0 {
		return t.Subtle.Render("No stored permission decisions.") + "\n"
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		decision := "deny"
		if r.Allowed {
			decision = "allow"
		}
		rows = append(rows, []string{
			r.Origin.String(),
			r.Kind.DisplayName(),
			decision,
			RelativeTime(time.Unix(r.UpdatedAt, 0)),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers("ORIGIN", "PERMISSION", "DECISION", "UPDATED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Foreground(t.Accent).Bold(true)
			case col == 2 && rows[row][col] == "allow":
				return style.Foreground(t.Success)
			case col == 2:
				return style.Foreground(t.Error)
			case col == 3:
				return style.Foreground(t.Muted)
			default:
				return style.Foreground(t.Text)
			}
		})
	return tbl.String() + "\n"
}

// Posture renders the security posture report.
func (t *Theme) Posture(p entity.SecurityPosture) string {
	var b strings.Builder

	b.WriteString(t.BoxHeader.Render("Security posture"))
	b.WriteString("\n")
	for _, c := range p.Checks {
		mark := t.SuccessStyle.Render("✓")
		if !c.Enabled {
			mark = t.ErrorStyle.Render("✗")
		}
		fmt.Fprintf(&b, "%s %s\n", mark, c.Name)
	}
	fmt.Fprintf(&b, "\n%s %d/%d %s",
		t.Subtitle.Render("score"), p.Score, p.MaxScore, t.AccentBadge(p.Grade))
	return t.Box.Render(b.String()) + "\n"
}

// AdblockStats renders the shield counters.
func (t *Theme) AdblockStats(s entity.AdblockStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", t.Title.Render("Ad blocking"), t.OnOffBadge(s.Enabled))
	b.WriteString(t.line("blocked this session", fmt.Sprint(s.SessionBlocked)))
	b.WriteString(t.line("blocked all time", fmt.Sprint(s.TotalBlocked)))
	return b.String()
}

// SecurityEvent renders one event as a single line.
func (t *Theme) SecurityEvent(ev entity.SecurityEvent) string {
	parts := []string{
		t.Subtle.Render(ev.At.Format("15:04:05")),
		t.WarningStyle.Render(string(ev.Kind)),
	}
	if ev.Partition != "" {
		parts = append(parts, t.MutedBadge(ev.Partition))
	}
	if ev.URL != "" {
		parts = append(parts, ev.URL)
	}
	for _, k := range slices.Sorted(maps.Keys(ev.Detail)) {
		parts = append(parts, t.Subtle.Render(k+"=")+ev.Detail[k])
	}
	return strings.Join(parts, " ")
}

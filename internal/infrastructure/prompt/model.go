package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/netguard/internal/application/port"
)

// KeyMap defines keybindings for the permission dialog.
type KeyMap struct {
	Allow    key.Binding
	Deny     key.Binding
	Left     key.Binding
	Right    key.Binding
	Remember key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Allow:    key.NewBinding(key.WithKeys("a", "y"), key.WithHelp("a", "allow")),
		Deny:     key.NewBinding(key.WithKeys("d", "n"), key.WithHelp("d", "deny")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "deny")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "allow")),
		Remember: key.NewBinding(key.WithKeys("r", " "), key.WithHelp("r", "remember")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:   key.NewBinding(key.WithKeys("esc", "ctrl+c", "q"), key.WithHelp("esc", "dismiss")),
	}
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ade80")).
			Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#909090"))
	incognitoNote = lipgloss.NewStyle().Foreground(lipgloss.Color("#fbbf24"))
	activeButton  = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0a0a0b")).
			Background(lipgloss.Color("#4ade80"))
	inactiveButton = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#909090")).
			Background(lipgloss.Color("#2d2d2d"))
)

// Model is the bubbletea model for one permission prompt.
type Model struct {
	prompt   port.PermissionPrompt
	keys     KeyMap
	allow    bool // current selection
	remember bool
	done     bool
	result   port.PermissionDialogResult
}

// NewModel creates a dialog for p. Deny is selected initially.
func NewModel(p port.PermissionPrompt) Model {
	return Model{
		prompt:   p,
		keys:     DefaultKeyMap(),
		remember: p.ShowRemember && p.RememberDefault,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Allow):
		return m.finish(true)
	case key.Matches(keyMsg, m.keys.Deny):
		return m.finish(false)
	case key.Matches(keyMsg, m.keys.Left):
		m.allow = false
	case key.Matches(keyMsg, m.keys.Right):
		m.allow = true
	case key.Matches(keyMsg, m.keys.Remember):
		if m.prompt.ShowRemember {
			m.remember = !m.remember
		}
	case key.Matches(keyMsg, m.keys.Confirm):
		return m.finish(m.allow)
	case key.Matches(keyMsg, m.keys.Cancel):
		m.done = true
		m.result = port.PermissionDialogResult{Dismissed: true}
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) finish(allowed bool) (tea.Model, tea.Cmd) {
	m.done = true
	m.allow = allowed
	m.result = port.PermissionDialogResult{
		Allowed:  allowed,
		Remember: m.prompt.ShowRemember && m.remember,
	}
	return m, tea.Quit
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}

	allowStyle, denyStyle := inactiveButton, activeButton
	if m.allow {
		allowStyle, denyStyle = activeButton, inactiveButton
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		denyStyle.Render(" Deny "), "  ", allowStyle.Render(" Allow "))

	lines := []string{
		titleStyle.Render(m.prompt.Message),
		subtleStyle.Render(m.prompt.Detail),
		"",
	}
	if m.prompt.Incognito {
		lines = append(lines, incognitoNote.Render("Incognito: this answer is forgotten when the session ends"), "")
	}
	if m.prompt.ShowRemember {
		box := "[ ]"
		if m.remember {
			box = "[x]"
		}
		lines = append(lines, box+" Remember this decision", "")
	}
	lines = append(lines, buttons, "", subtleStyle.Render(m.help()))

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) help() string {
	if m.prompt.ShowRemember {
		return "a allow • d deny • r remember • enter confirm • esc dismiss"
	}
	return "a allow • d deny • enter confirm • esc dismiss"
}

// Done reports whether the user answered or dismissed the dialog.
func (m Model) Done() bool {
	return m.done
}

// Result returns the answer. Only meaningful once Done is true.
func (m Model) Result() port.PermissionDialogResult {
	if !m.done {
		return port.PermissionDialogResult{Unavailable: true}
	}
	return m.result
}

var _ tea.Model = Model{}

// Package prompt renders permission prompts in the terminal.
package prompt

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/netguard/internal/application/port"
	"github.com/bnema/netguard/internal/logging"
)

// TerminalPrompter implements port.PermissionPrompter with a bubbletea dialog.
// Callers must not show two prompts at once; the prompt queue guarantees that.
type TerminalPrompter struct {
	lifetime context.Context
	options  []tea.ProgramOption
}

var _ port.PermissionPrompter = (*TerminalPrompter)(nil)

// NewTerminalPrompter creates a prompter. A dialog still on screen when
// lifetime ends resolves as unavailable. options are passed to every tea.Program
// (tests use tea.WithInput and tea.WithOutput).
func NewTerminalPrompter(lifetime context.Context, options ...tea.ProgramOption) *TerminalPrompter {
	return &TerminalPrompter{lifetime: lifetime, options: options}
}

// ShowPermissionDialog implements port.PermissionPrompter. It returns at once;
// callback runs when the dialog closes.
func (p *TerminalPrompter) ShowPermissionDialog(
	ctx context.Context,
	prompt port.PermissionPrompt,
	callback func(result port.PermissionDialogResult),
) {
	log := logging.FromContext(ctx)
	opts := append([]tea.ProgramOption{tea.WithContext(p.lifetime)}, p.options...)

	go func() {
		final, err := tea.NewProgram(NewModel(prompt), opts...).Run()
		if err != nil {
			log.Debug().Err(err).Msg("permission dialog closed without answer")
			callback(port.PermissionDialogResult{Unavailable: true})
			return
		}

		m, ok := final.(Model)
		if !ok {
			callback(port.PermissionDialogResult{Unavailable: true})
			return
		}
		callback(m.Result())
	}()
}

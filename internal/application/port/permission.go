package port

import (
	"context"

	"github.com/bnema/netguard/internal/domain/entity"
)

// PermissionPrompt is everything the UI needs to render one permission dialog.
type PermissionPrompt struct {
	Partition string
	Origin    entity.Origin
	// Label is the host shown to the user, or a generic label when the origin is unknown.
	Label       string
	Kind        entity.PermissionKind
	DisplayName string
	Message     string
	Detail      string
	Incognito   bool

	// ShowRemember is false for incognito sessions: nothing is persisted there.
	ShowRemember    bool
	RememberDefault bool
}

// PermissionDialogResult represents the user's response from a permission dialog.
type PermissionDialogResult struct {
	// Allowed is true if the user clicked "Allow".
	Allowed bool

	// Remember is true when the "remember" option was checked.
	// Ignored for incognito prompts.
	Remember bool

	// Dismissed is true when the user closed the dialog without choosing
	// (escape pressed). Treated as a denial for the rest of the session.
	Dismissed bool

	// Unavailable is true when no answer could be collected: no prompter,
	// the prompter failed, or the queue shut down. Denied and not cached.
	Unavailable bool
}

// PermissionPrompter shows interactive permission dialogs.
// Implemented by the UI layer (terminal prompt, desktop dialog).
type PermissionPrompter interface {
	// ShowPermissionDialog displays the prompt and invokes callback exactly once
	// with the user's decision. It may return before the user answers.
	ShowPermissionDialog(ctx context.Context, prompt PermissionPrompt, callback func(result PermissionDialogResult))
}

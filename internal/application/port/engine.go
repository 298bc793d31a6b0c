package port

import (
	"context"
	"net/http"

	"github.com/bnema/netguard/internal/domain/entity"
)

// SessionHooks are the request-lifecycle callbacks a page engine invokes for
// one partition. All methods are synchronous except RequestPermission, which
// may wait on user input.
type SessionHooks interface {
	// BeforeRequest chooses allow, cancel or redirect for an outbound request.
	BeforeRequest(ctx context.Context, req *entity.Request) entity.Verdict

	// BeforeSendHeaders returns the header set to send for an allowed request.
	BeforeSendHeaders(ctx context.Context, req *entity.Request) http.Header

	// HeadersReceived returns the response headers the engine should use.
	HeadersReceived(ctx context.Context, req *entity.Request, header http.Header) http.Header

	// CheckPermission answers a silent permission check. Never prompts.
	CheckPermission(ctx context.Context, requestingURL, permission string) bool

	// RequestPermission answers an interactive permission request.
	RequestPermission(ctx context.Context, requestingURL, permission string) bool

	// WindowOpen decides what to do with a popup.
	WindowOpen(ctx context.Context, rawURL string) entity.PopupAction

	// WillDownload screens a download before it starts.
	WillDownload(ctx context.Context, rawURL, filename string) entity.DownloadVerdict
}

// SessionEngine is the page engine side of a partition.
type SessionEngine interface {
	// AttachSession registers hooks for a partition. Called once per partition.
	AttachSession(ctx context.Context, partition string, hooks SessionHooks) error
}

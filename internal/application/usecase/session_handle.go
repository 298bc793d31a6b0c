package usecase

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/bnema/netguard/internal/application/port"
	"github.com/bnema/netguard/internal/domain/classifier"
	"github.com/bnema/netguard/internal/domain/entity"
	neturl "github.com/bnema/netguard/internal/domain/url"
	"github.com/bnema/netguard/internal/logging"
)

// Response headers added to internal pages.
var internalPageHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "DENY",
	"X-XSS-Protection":       "1; mode=block",
}

// SessionHandle is one configured partition. It is what the page engine calls into.
type SessionHandle struct {
	partition string
	kind      entity.SessionKind

	config  atomic.Pointer[entity.SessionConfig]
	blocked atomic.Int64
	cache   *PermissionCache

	interceptor *RequestInterceptor
	broker      *PermissionBroker
	lifetime    *BlockCounter
}

var _ port.SessionHooks = (*SessionHandle)(nil)

func newSessionHandle(
	cfg entity.SessionConfig,
	interceptor *RequestInterceptor,
	broker *PermissionBroker,
	lifetime *BlockCounter,
) *SessionHandle {
	h := &SessionHandle{
		partition:   cfg.Partition,
		kind:        cfg.Kind,
		cache:       NewPermissionCache(),
		interceptor: interceptor,
		broker:      broker,
		lifetime:    lifetime,
	}
	h.config.Store(&cfg)
	return h
}

// Partition returns the partition name.
func (h *SessionHandle) Partition() string { return h.partition }

// Kind returns whether the session persists anything.
func (h *SessionHandle) Kind() entity.SessionKind { return h.kind }

// Config returns the current policy snapshot.
func (h *SessionHandle) Config() entity.SessionConfig {
	return *h.config.Load()
}

// BlockedCount returns requests blocked as ads since start (or incognito teardown).
func (h *SessionHandle) BlockedCount() int64 {
	return h.blocked.Load()
}

// Permissions returns the session's in-memory decisions.
func (h *SessionHandle) Permissions() *PermissionCache {
	return h.cache
}

// Scope returns the broker view of this session.
func (h *SessionHandle) Scope() PermissionScope {
	return PermissionScope{
		Partition: h.partition,
		Incognito: h.kind == entity.SessionIncognito,
		Cache:     h.cache,
	}
}

// RecordBlocked implements BlockRecorder.
func (h *SessionHandle) RecordBlocked() {
	h.blocked.Add(1)
	if h.kind != entity.SessionIncognito && h.lifetime != nil {
		h.lifetime.Increment()
	}
}

func (h *SessionHandle) setConfig(cfg entity.SessionConfig) {
	h.config.Store(&cfg)
}

func (h *SessionHandle) resetEphemeral() {
	h.cache.Clear()
	h.blocked.Store(0)
}

// BeforeRequest implements port.SessionHooks.
func (h *SessionHandle) BeforeRequest(ctx context.Context, req *entity.Request) entity.Verdict {
	return h.interceptor.Intercept(ctx, h.Config(), req, h)
}

// BeforeSendHeaders implements port.SessionHooks.
func (h *SessionHandle) BeforeSendHeaders(_ context.Context, req *entity.Request) http.Header {
	if req == nil {
		return make(http.Header)
	}
	if classifier.IsInternal(req.URL) {
		return cloneHeader(req.Headers)
	}
	cfg := h.Config()
	out := PrivacyHeaders(req.Headers, cfg)
	if cfg.Flags.BlockThirdPartyCookies && isThirdParty(req) {
		out.Del("Cookie")
	}
	return out
}

// HeadersReceived implements port.SessionHooks.
func (h *SessionHandle) HeadersReceived(_ context.Context, req *entity.Request, header http.Header) http.Header {
	out := cloneHeader(header)
	if req == nil {
		return out
	}
	if classifier.IsInternal(req.URL) {
		for name, value := range internalPageHeaders {
			out.Set(name, value)
		}
		return out
	}
	if h.Config().Flags.BlockThirdPartyCookies && isThirdParty(req) {
		out.Del("Set-Cookie")
	}
	return out
}

// CheckPermission implements port.SessionHooks.
func (h *SessionHandle) CheckPermission(ctx context.Context, requestingURL, permission string) bool {
	kind, ok := entity.ParsePermissionKind(permission)
	if !ok {
		return false
	}
	return h.broker.CheckPermission(ctx, h.Scope(), neturl.OriginOf(requestingURL), kind)
}

// RequestPermission implements port.SessionHooks.
func (h *SessionHandle) RequestPermission(ctx context.Context, requestingURL, permission string) bool {
	kind, ok := entity.ParsePermissionKind(permission)
	if !ok {
		logging.FromContext(ctx).Debug().
			Str("partition", h.partition).
			Str("permission", permission).
			Msg("denying unknown permission")
		return false
	}
	return h.broker.RequestPermission(ctx, h.Scope(), neturl.OriginOf(requestingURL), kind)
}

// WindowOpen implements port.SessionHooks.
func (h *SessionHandle) WindowOpen(ctx context.Context, rawURL string) entity.PopupAction {
	return h.interceptor.ScreenPopup(ctx, h.Config(), rawURL)
}

// WillDownload implements port.SessionHooks.
func (h *SessionHandle) WillDownload(ctx context.Context, rawURL, filename string) entity.DownloadVerdict {
	return h.interceptor.ScreenDownload(ctx, h.Config(), rawURL, filename)
}

// isThirdParty is true when the request leaves the top-level document's site.
func isThirdParty(req *entity.Request) bool {
	if req.TopLevelURL == "" {
		return false
	}
	return !neturl.SameSite(req.URL, req.TopLevelURL)
}

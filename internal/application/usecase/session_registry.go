package usecase

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"

	"github.com/bnema/netguard/internal/application/port"
	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/logging"
)

// SessionRegistry tracks configured partitions. Each partition is wired to
// the engine exactly once, however many times Configure is called.
type SessionRegistry struct {
	engine      port.SessionEngine
	settings    port.SettingsStore
	interceptor *RequestInterceptor
	broker      *PermissionBroker
	lifetime    *BlockCounter
	events      port.SecurityEventPublisher

	mu       sync.Mutex
	sessions map[string]*SessionHandle
}

// SessionRegistryDeps groups the collaborators of a SessionRegistry.
type SessionRegistryDeps struct {
	Engine      port.SessionEngine
	Settings    port.SettingsStore
	Interceptor *RequestInterceptor
	Broker      *PermissionBroker
	Lifetime    *BlockCounter
	Events      port.SecurityEventPublisher
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry(deps SessionRegistryDeps) *SessionRegistry {
	if deps.Interceptor == nil {
		deps.Interceptor = NewRequestInterceptor(nil, deps.Events, nil)
	}
	if deps.Events == nil {
		deps.Events = port.NopSecurityEventPublisher{}
	}
	return &SessionRegistry{
		engine:      deps.Engine,
		settings:    deps.Settings,
		interceptor: deps.Interceptor,
		broker:      deps.Broker,
		lifetime:    deps.Lifetime,
		events:      deps.Events,
		sessions:    make(map[string]*SessionHandle),
	}
}

// Configure returns the handle for partition name, creating and attaching it
// on first use. Later calls return the same handle without re-attaching.
// A failed attach leaves nothing registered so the call can be retried.
func (r *SessionRegistry) Configure(ctx context.Context, name string) (*SessionHandle, error) {
	if err := entity.ValidatePartition(name); err != nil {
		return nil, fmt.Errorf("configure session %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.sessions[name]; ok {
		return h, nil
	}

	h := newSessionHandle(r.sessionConfig(name, r.currentSettings()), r.interceptor, r.broker, r.lifetime)
	if r.engine != nil {
		if err := r.engine.AttachSession(ctx, name, h); err != nil {
			return nil, fmt.Errorf("attach session %q: %w", name, err)
		}
	}
	r.sessions[name] = h

	logging.FromContext(ctx).Info().
		Str("partition", name).
		Str("kind", string(h.Kind())).
		Msg("session configured")
	return h, nil
}

// Get returns an already configured session.
func (r *SessionRegistry) Get(name string) (*SessionHandle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.sessions[name]
	return h, ok
}

// Sessions returns every configured session ordered by partition name.
func (r *SessionRegistry) Sessions() []*SessionHandle {
	r.mu.Lock()
	handles := make([]*SessionHandle, 0, len(r.sessions))
	for _, h := range r.sessions {
		handles = append(handles, h)
	}
	r.mu.Unlock()

	sort.Slice(handles, func(i, j int) bool { return handles[i].partition < handles[j].partition })
	return handles
}

// TeardownIncognito drops the in-memory state of every incognito session:
// permission decisions and block counters. Persistent sessions are untouched.
// It returns the number of sessions reset.
func (r *SessionRegistry) TeardownIncognito(ctx context.Context) int {
	n := 0
	for _, h := range r.Sessions() {
		if h.Kind() != entity.SessionIncognito {
			continue
		}
		h.resetEphemeral()
		n++
	}
	logging.FromContext(ctx).Info().Int("sessions", n).Msg("incognito state discarded")
	return n
}

// ApplySettings pushes new settings into every session.
func (r *SessionRegistry) ApplySettings(settings port.Settings) {
	for _, h := range r.Sessions() {
		h.setConfig(r.sessionConfig(h.partition, settings))
	}
}

// SessionBlockedTotal sums the block counters of live sessions.
func (r *SessionRegistry) SessionBlockedTotal() int64 {
	var total int64
	for _, h := range r.Sessions() {
		total += h.BlockedCount()
	}
	return total
}

// HandleCertificateError reports a TLS certificate failure and rejects it.
// Certificate errors are never bypassed from this layer.
func (r *SessionRegistry) HandleCertificateError(ctx context.Context, partition, rawURL, errText, issuer string) bool {
	logging.FromContext(ctx).Warn().
		Str("partition", partition).
		Str("url", entity.TruncateURL(rawURL, logURLLen)).
		Str("error", errText).
		Msg("certificate error")

	detail := map[string]string{"error": errText}
	if issuer != "" {
		detail["issuer"] = issuer
	}
	ev := entity.NewSecurityEvent(entity.SecurityEventCertificate, rawURL, detail)
	ev.Partition = partition
	ev.Incognito = entity.KindForPartition(partition) == entity.SessionIncognito
	r.events.Publish(ev)
	return false
}

// ConfigFor returns the policy snapshot partition name would be evaluated
// against under current settings, whether or not it is configured.
func (r *SessionRegistry) ConfigFor(name string) entity.SessionConfig {
	if h, ok := r.Get(name); ok {
		return h.Config()
	}
	return r.sessionConfig(name, r.currentSettings())
}

func (r *SessionRegistry) currentSettings() port.Settings {
	if r.settings == nil {
		return port.Settings{}
	}
	return r.settings.Snapshot()
}

func (r *SessionRegistry) sessionConfig(name string, s port.Settings) entity.SessionConfig {
	return entity.SessionConfig{
		Partition:   name,
		Kind:        entity.KindForPartition(name),
		Flags:       s.Privacy,
		UserAgent:   s.UserAgent,
		ClientHints: maps.Clone(s.ClientHints),
	}
}

// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/netguard/internal/application/port"
	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/domain/repository"
	neturl "github.com/bnema/netguard/internal/domain/url"
	"github.com/bnema/netguard/internal/logging"
)

const (
	unknownSiteLabel    = "this site"
	incognitoDetail     = "Incognito: this decision will not be saved."
	persistentDetail    = "You can change this later in Settings."
	permissionFlightSep = "|"
)

// PermissionCallback provides allow/deny functions for the permission request.
type PermissionCallback struct {
	Allow func()
	Deny  func()
}

// PermissionScope is the per-session state the broker reads and writes.
type PermissionScope struct {
	Partition string
	Incognito bool
	Cache     *PermissionCache
}

// PermissionBroker answers permission checks and drives permission prompts.
// Lookup order is session cache, then the persisted store (persistent sessions
// only), then an interactive prompt. Unknown decisions are denied.
type PermissionBroker struct {
	permRepo repository.PermissionRepository
	queue    *PromptQueue
	metrics  port.InterceptMetrics
	flights  singleflight.Group
}

// NewPermissionBroker creates a new permission broker.
func NewPermissionBroker(
	permRepo repository.PermissionRepository,
	queue *PromptQueue,
	metrics port.InterceptMetrics,
) *PermissionBroker {
	if metrics == nil {
		metrics = port.NopMetrics{}
	}
	return &PermissionBroker{
		permRepo: permRepo,
		queue:    queue,
		metrics:  metrics,
	}
}

// SetPrompter sets the dialog presenter once the UI is available.
func (b *PermissionBroker) SetPrompter(prompter port.PermissionPrompter) {
	b.queue.SetPrompter(prompter)
}

// CheckPermission answers a silent permission check. It never prompts.
func (b *PermissionBroker) CheckPermission(
	ctx context.Context,
	scope PermissionScope,
	origin entity.Origin,
	kind entity.PermissionKind,
) bool {
	if kind.IsAutoGranted() {
		return true
	}
	if !kind.Valid() {
		return false
	}
	if allowed, ok := b.lookup(ctx, scope, origin, kind); ok {
		return allowed
	}
	return false
}

// RequestPermission answers an interactive permission request, prompting the
// user when no decision is known. Concurrent requests for the same session,
// origin and kind share a single prompt. If ctx ends first the caller gets
// false; the prompt itself stays queued and its answer is still recorded.
func (b *PermissionBroker) RequestPermission(
	ctx context.Context,
	scope PermissionScope,
	origin entity.Origin,
	kind entity.PermissionKind,
) bool {
	log := logging.FromContext(ctx).With().
		Str("component", "permission").
		Str("partition", scope.Partition).
		Str("origin", origin.String()).
		Str("kind", string(kind)).
		Logger()

	if kind.IsAutoGranted() {
		log.Debug().Msg("auto-granting permission")
		return true
	}
	if !kind.Valid() {
		log.Warn().Msg("unknown permission kind, denying")
		return false
	}
	if allowed, ok := b.lookup(ctx, scope, origin, kind); ok {
		log.Debug().Bool("allowed", allowed).Msg("using known permission decision")
		return allowed
	}

	// Answers from a flight started before the cache was cleared are not cached,
	// and requests after the clear start their own flight.
	var gen uint64
	if scope.Cache != nil {
		gen = scope.Cache.Generation()
	}
	promptCtx := context.WithoutCancel(ctx)
	ch := b.flights.DoChan(flightKey(scope.Partition, gen, origin, kind), func() (interface{}, error) {
		// A flight for this key may have resolved between lookup and here.
		if scope.Cache != nil {
			if allowed, ok := scope.Cache.Get(origin, kind); ok {
				return allowed, nil
			}
		}
		return b.prompt(promptCtx, scope, gen, origin, kind), nil
	})

	select {
	case res := <-ch:
		allowed, _ := res.Val.(bool)
		if res.Shared {
			log.Debug().Bool("allowed", allowed).Msg("joined in-flight permission prompt")
		}
		return allowed
	case <-ctx.Done():
		log.Debug().Err(ctx.Err()).Msg("permission request abandoned by caller")
		return false
	}
}

// HandlePermissionRequest is the callback form of RequestPermission.
// Exactly one of callback.Allow or callback.Deny is invoked, from another goroutine.
func (b *PermissionBroker) HandlePermissionRequest(
	ctx context.Context,
	scope PermissionScope,
	origin entity.Origin,
	kind entity.PermissionKind,
	callback PermissionCallback,
) {
	go func() {
		if b.RequestPermission(ctx, scope, origin, kind) {
			callback.Allow()
			return
		}
		callback.Deny()
	}()
}

// lookup consults the session cache, then the store for persistent sessions.
func (b *PermissionBroker) lookup(
	ctx context.Context,
	scope PermissionScope,
	origin entity.Origin,
	kind entity.PermissionKind,
) (allowed, ok bool) {
	if scope.Cache != nil {
		if allowed, ok := scope.Cache.Get(origin, kind); ok {
			return allowed, true
		}
	}
	if scope.Incognito || !origin.Known() || b.permRepo == nil {
		return false, false
	}

	record, err := b.permRepo.Get(ctx, origin, kind)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("origin", origin.String()).
			Str("kind", string(kind)).
			Msg("failed to read stored permission, treating as undecided")
		return false, false
	}
	if record == nil {
		return false, false
	}
	return record.Allowed, true
}

// prompt runs on the flight goroutine and blocks until the queue answers.
// gen is the cache generation read when the flight started.
func (b *PermissionBroker) prompt(
	ctx context.Context,
	scope PermissionScope,
	gen uint64,
	origin entity.Origin,
	kind entity.PermissionKind,
) bool {
	log := logging.FromContext(ctx).With().
		Str("component", "permission").
		Str("partition", scope.Partition).
		Str("origin", origin.String()).
		Str("kind", string(kind)).
		Logger()

	result := <-b.queue.Enqueue(ctx, BuildPermissionPrompt(scope, origin, kind))
	if result.Unavailable {
		log.Info().Msg("no answer from permission prompt, denying")
		b.metrics.ObservePrompt(kind, false)
		return false
	}

	// A user dismissal counts as a deny for the rest of the session.
	allowed := result.Allowed && !result.Dismissed
	b.metrics.ObservePrompt(kind, allowed)
	if scope.Cache != nil && !scope.Cache.SetIfGeneration(gen, origin, kind, allowed) {
		log.Debug().Bool("allowed", allowed).Msg("session state reset while prompting, answer not kept")
		return allowed
	}

	if result.Dismissed {
		log.Info().Msg("permission prompt dismissed, denying for this session")
		return false
	}
	if scope.Incognito || !result.Remember || !origin.Known() || b.permRepo == nil {
		log.Info().Bool("allowed", allowed).Msg("permission decided for this session")
		return allowed
	}

	record := &entity.PermissionRecord{
		Origin:    origin,
		Kind:      kind,
		Allowed:   allowed,
		UpdatedAt: time.Now().Unix(),
	}
	if err := b.permRepo.Set(ctx, record); err != nil {
		log.Warn().Err(err).Msg("failed to persist permission decision")
	} else {
		log.Info().Bool("allowed", allowed).Msg("permission decision remembered")
	}
	return allowed
}

// BuildPermissionPrompt assembles the dialog content for one request.
func BuildPermissionPrompt(scope PermissionScope, origin entity.Origin, kind entity.PermissionKind) port.PermissionPrompt {
	label := neturl.DisplayHost(origin.String())
	if label == "" {
		label = unknownSiteLabel
	}

	p := port.PermissionPrompt{
		Partition:       scope.Partition,
		Origin:          origin,
		Label:           label,
		Kind:            kind,
		DisplayName:     kind.DisplayName(),
		Message:         fmt.Sprintf("Allow %s for %s?", kind.DisplayName(), label),
		Detail:          persistentDetail,
		Incognito:       scope.Incognito,
		ShowRemember:    !scope.Incognito,
		RememberDefault: !scope.Incognito,
	}
	if scope.Incognito {
		p.Detail = incognitoDetail
	}
	return p
}

func flightKey(partition string, gen uint64, origin entity.Origin, kind entity.PermissionKind) string {
	return partition + permissionFlightSep + strconv.FormatUint(gen, 10) +
		permissionFlightSep + origin.String() + permissionFlightSep + string(kind)
}

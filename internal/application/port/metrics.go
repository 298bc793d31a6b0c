package port

import "github.com/bnema/netguard/internal/domain/entity"

// InterceptMetrics records pipeline outcomes.
type InterceptMetrics interface {
	ObserveDecision(kind entity.SessionKind, stage entity.Stage)
	ObservePrompt(kind entity.PermissionKind, allowed bool)
	ObserveSecurityEvent(kind entity.SecurityEventKind)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) ObserveDecision(entity.SessionKind, entity.Stage) {}
func (NopMetrics) ObservePrompt(entity.PermissionKind, bool)        {}
func (NopMetrics) ObserveSecurityEvent(entity.SecurityEventKind)    {}

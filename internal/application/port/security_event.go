package port

import "github.com/bnema/netguard/internal/domain/entity"

// SecurityEventPublisher delivers security notifications to whoever displays them.
// Publish must never block the caller.
type SecurityEventPublisher interface {
	Publish(event entity.SecurityEvent)
}

// NopSecurityEventPublisher drops every event.
type NopSecurityEventPublisher struct{}

func (NopSecurityEventPublisher) Publish(entity.SecurityEvent) {}

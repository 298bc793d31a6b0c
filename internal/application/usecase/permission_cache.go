package usecase

import (
	"sync"

	"github.com/bnema/netguard/internal/domain/entity"
)

type permissionKey struct {
	origin entity.Origin
	kind   entity.PermissionKind
}

// PermissionCache holds the decisions made during one session's lifetime.
// It is the only place incognito decisions are kept.
type PermissionCache struct {
	mu      sync.RWMutex
	entries map[permissionKey]bool
	// gen is bumped by Clear so answers decided before a clear can be dropped.
	gen uint64
}

// NewPermissionCache creates an empty cache.
func NewPermissionCache() *PermissionCache {
	return &PermissionCache{entries: make(map[permissionKey]bool)}
}

// Get returns the cached decision and whether one exists.
func (c *PermissionCache) Get(origin entity.Origin, kind entity.PermissionKind) (allowed, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	allowed, ok = c.entries[permissionKey{origin: origin, kind: kind}]
	return allowed, ok
}

// Set records a decision.
func (c *PermissionCache) Set(origin entity.Origin, kind entity.PermissionKind, allowed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[permissionKey{origin: origin, kind: kind}] = allowed
}

// Generation returns the current generation. It changes on every Clear.
func (c *PermissionCache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// SetIfGeneration records a decision only if the cache has not been cleared
// since gen was read. It reports whether the decision was recorded.
func (c *PermissionCache) SetIfGeneration(gen uint64, origin entity.Origin, kind entity.PermissionKind, allowed bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return false
	}
	c.entries[permissionKey{origin: origin, kind: kind}] = allowed
	return true
}

// Delete forgets a decision.
func (c *PermissionCache) Delete(origin entity.Origin, kind entity.PermissionKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, permissionKey{origin: origin, kind: kind})
}

// Len returns the number of cached decisions.
func (c *PermissionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every decision.
func (c *PermissionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[permissionKey]bool)
	c.gen++
}

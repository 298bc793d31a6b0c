// Package proxy is an HTTP forward proxy that plays the page engine role:
// every request it relays goes through the hooks of one session partition.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/netguard/internal/application/port"
	"github.com/bnema/netguard/internal/logging"
)

// ErrAlreadyAttached is returned when a partition is attached twice.
var ErrAlreadyAttached = errors.New("session already attached")

// Engine keeps the hooks registered for each partition.
type Engine struct {
	mu    sync.RWMutex
	hooks map[string]port.SessionHooks
}

var _ port.SessionEngine = (*Engine)(nil)

// NewEngine creates an engine with no sessions.
func NewEngine() *Engine {
	return &Engine{hooks: make(map[string]port.SessionHooks)}
}

// AttachSession implements port.SessionEngine.
func (e *Engine) AttachSession(ctx context.Context, partition string, hooks port.SessionHooks) error {
	if hooks == nil {
		return fmt.Errorf("attach %q: nil hooks", partition)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.hooks[partition]; ok {
		return fmt.Errorf("attach %q: %w", partition, ErrAlreadyAttached)
	}
	e.hooks[partition] = hooks

	logging.FromContext(ctx).Debug().Str("partition", partition).Msg("session attached to proxy")
	return nil
}

// Hooks returns the hooks for partition.
func (e *Engine) Hooks(partition string) (port.SessionHooks, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	h, ok := e.hooks[partition]
	return h, ok
}

// Partitions lists attached partitions in name order.
func (e *Engine) Partitions() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.hooks))
	for name := range e.hooks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

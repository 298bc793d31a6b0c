package usecase

import (
	"context"
	"sync"

	"github.com/bnema/netguard/internal/application/port"
	"github.com/bnema/netguard/internal/logging"
)

var unavailable = port.PermissionDialogResult{Unavailable: true}

type promptJob struct {
	ctx    context.Context
	prompt port.PermissionPrompt
	result chan port.PermissionDialogResult
}

// PromptQueue serializes permission dialogs: one prompt on screen at a time,
// shown in the order they were enqueued.
type PromptQueue struct {
	prompter   port.PermissionPrompter
	prompterMu sync.RWMutex

	mu      sync.Mutex
	cond    *sync.Cond
	pending []*promptJob
	closed  bool

	closing chan struct{}
	stopped chan struct{}
}

// NewPromptQueue starts the queue worker. Close must be called to stop it.
func NewPromptQueue(prompter port.PermissionPrompter) *PromptQueue {
	q := &PromptQueue{
		prompter: prompter,
		closing:  make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

// SetPrompter sets the prompter. This can be called after initialization when
// the UI becomes available.
func (q *PromptQueue) SetPrompter(prompter port.PermissionPrompter) {
	q.prompterMu.Lock()
	defer q.prompterMu.Unlock()
	q.prompter = prompter
}

func (q *PromptQueue) getPrompter() port.PermissionPrompter {
	q.prompterMu.RLock()
	defer q.prompterMu.RUnlock()
	return q.prompter
}

// Enqueue schedules a prompt. The returned channel receives exactly one result.
// A closed queue answers immediately as unavailable.
func (q *PromptQueue) Enqueue(ctx context.Context, prompt port.PermissionPrompt) <-chan port.PermissionDialogResult {
	job := &promptJob{
		ctx:    ctx,
		prompt: prompt,
		result: make(chan port.PermissionDialogResult, 1),
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		job.result <- unavailable
		return job.result
	}
	q.pending = append(q.pending, job)
	q.mu.Unlock()
	q.cond.Signal()

	return job.result
}

// Pending returns the number of prompts waiting behind the current one.
func (q *PromptQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close stops the worker. The prompt on screen and every queued prompt
// resolve as unavailable.
func (q *PromptQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.stopped
		return
	}
	q.closed = true
	close(q.closing)
	q.mu.Unlock()
	q.cond.Broadcast()
	<-q.stopped
}

func (q *PromptQueue) run() {
	defer close(q.stopped)
	for {
		job, ok := q.next()
		if !ok {
			return
		}
		job.result <- q.show(job)
	}
}

// next blocks until a job is available. On close it dismisses what is left.
func (q *PromptQueue) next() (*promptJob, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.pending) == 0 && !q.closed {
		q.cond.Wait()
	}
	if q.closed {
		for _, job := range q.pending {
			job.result <- unavailable
		}
		q.pending = nil
		return nil, false
	}
	job := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	return job, true
}

// show displays one prompt and waits for its answer. There is no timeout:
// a prompt stays until the user answers, the UI dismisses it, or the queue closes.
func (q *PromptQueue) show(job *promptJob) (result port.PermissionDialogResult) {
	log := logging.FromContext(job.ctx).With().
		Str("component", "permission-prompt").
		Str("origin", job.prompt.Origin.String()).
		Str("kind", string(job.prompt.Kind)).
		Logger()

	prompter := q.getPrompter()
	if prompter == nil {
		log.Warn().Msg("no permission prompter available, denying")
		return unavailable
	}

	answer := make(chan port.PermissionDialogResult, 1)
	var once sync.Once
	callback := func(r port.PermissionDialogResult) {
		once.Do(func() { answer <- r })
	}

	if !q.invoke(job.ctx, prompter, job.prompt, callback) {
		log.Error().Msg("permission prompter panicked, denying")
		return unavailable
	}

	select {
	case result = <-answer:
		if result.Dismissed {
			log.Debug().Msg("permission prompt dismissed")
		}
		return result
	case <-q.closing:
		log.Debug().Msg("prompt queue closed while waiting for answer")
		return unavailable
	}
}

func (q *PromptQueue) invoke(
	ctx context.Context,
	prompter port.PermissionPrompter,
	prompt port.PermissionPrompt,
	callback func(port.PermissionDialogResult),
) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	prompter.ShowPermissionDialog(ctx, prompt, callback)
	return true
}

// Package lifecycle tracks cleanup callbacks per owner id and runs them on
// explicit dispose. It is the kit's ownership model for teardown: no
// garbage-collection-triggered cleanup exists or is assumed — every widget
// instance that acquires resources registers a cleanup, and unmounting calls
// Dispose. Safe for concurrent use.
package lifecycle

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Registry maps owner ids to their registered cleanup callbacks.
type Registry struct {
	mu       sync.Mutex
	cleanups map[string][]func()
	log      *logrus.Logger
}

// New creates an empty registry. If log is nil, dispose panics are dropped
// silently instead of logged.
func New(log *logrus.Logger) *Registry {
	return &Registry{cleanups: make(map[string][]func()), log: log}
}

// OnCleanup registers fn to run when owner is disposed.
func (r *Registry) OnCleanup(owner string, fn func()) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.cleanups[owner] = append(r.cleanups[owner], fn)
	r.mu.Unlock()
}

// Dispose runs owner's cleanups in reverse registration order and forgets
// them. Calling Dispose again for the same owner is a no-op, so teardown
// paths can overlap safely. A panicking cleanup is recovered and logged; the
// remaining cleanups still run.
func (r *Registry) Dispose(owner string) {
	r.mu.Lock()
	fns := r.cleanups[owner]
	delete(r.cleanups, owner)
	r.mu.Unlock()

	for i := len(fns) - 1; i >= 0; i-- {
		r.run(owner, fns[i])
	}
}

// DisposeAll disposes every registered owner. Order across owners is
// unspecified; within an owner it is reverse registration order.
func (r *Registry) DisposeAll() {
	r.mu.Lock()
	owners := make([]string, 0, len(r.cleanups))
	for owner := range r.cleanups {
		owners = append(owners, owner)
	}
	r.mu.Unlock()

	for _, owner := range owners {
		r.Dispose(owner)
	}
}

// Pending returns the number of cleanups registered for owner.
func (r *Registry) Pending(owner string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cleanups[owner])
}

func (r *Registry) run(owner string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil && r.log != nil {
			r.log.WithField("owner", owner).WithField("panic", rec).Error("cleanup panicked")
		}
	}()
	fn()
}

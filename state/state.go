// Package state provides the reactive value cell the widget kit is built on:
// a typed container with equality-gated change notification, derived read-only
// states, coarse batching, and an optional persisted variant.
//
// Notification is synchronous and runs in subscription order. Subscribing or
// unsubscribing from inside a notification never skips or double-calls the
// remaining subscribers.
package state

import (
	"reflect"
	"sync"
)

// Source is the untyped face of a state cell, used by Derived to subscribe to
// dependencies of mixed value types.
type Source interface {
	// Name returns the name given via WithName, or "".
	Name() string
	// watch subscribes an untyped change callback.
	watch(fn func()) (cancel func())
}

// Hooks intercepts named state transitions. The plugin registry implements
// this so BeforeStateUpdate/AfterStateUpdate plugin hooks see updates; it is
// wired explicitly per state via WithHooks — there is no global registry.
type Hooks interface {
	BeforeUpdate(name string, oldValue, newValue any)
	AfterUpdate(name string, oldValue, newValue any)
}

type subscriber[T any] struct {
	fn        func(newValue, oldValue T)
	cancelled bool
}

// State is a reactive value cell.
type State[T any] struct {
	mu    sync.Mutex
	value T
	subs  []*subscriber[T]
	eq    func(a, b T) bool
	name  string
	hooks Hooks
}

// Option configures a State at construction.
type Option[T any] func(*State[T])

// WithEqual overrides the change-detection predicate. The default treats
// comparable values as equal via ==; values of uncomparable types always
// count as changed.
func WithEqual[T any](eq func(a, b T) bool) Option[T] {
	return func(s *State[T]) { s.eq = eq }
}

// WithName names the state for hook dispatch and logging.
func WithName[T any](name string) Option[T] {
	return func(s *State[T]) { s.name = name }
}

// WithHooks attaches a before/after update interceptor.
func WithHooks[T any](h Hooks) Option[T] {
	return func(s *State[T]) { s.hooks = h }
}

// New creates a state cell holding initial.
func New[T any](initial T, opts ...Option[T]) *State[T] {
	s := &State[T]{value: initial, eq: defaultEqual[T]}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements Source.
func (s *State[T]) Name() string { return s.name }

// Get returns the current value.
func (s *State[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores v and notifies subscribers if it differs from the current value.
// Returns true if the value changed.
func (s *State[T]) Set(v T) bool {
	return s.Update(func(T) T { return v })
}

// Update applies fn to the current value and stores the result. fn receives
// the value Get would have returned immediately prior to the call. Returns
// true if the value changed.
func (s *State[T]) Update(fn func(T) T) bool {
	s.mu.Lock()
	old := s.value
	next := fn(old)
	if s.eq(old, next) {
		s.mu.Unlock()
		return false
	}
	if s.hooks != nil {
		s.hooks.BeforeUpdate(s.name, old, next)
	}
	s.value = next
	// Snapshot so subscribe/unsubscribe during notification neither skips
	// nor double-calls the remaining subscribers.
	snapshot := make([]*subscriber[T], len(s.subs))
	copy(snapshot, s.subs)
	s.mu.Unlock()

	notify := func() {
		for _, sub := range snapshot {
			if sub.cancelled {
				continue
			}
			sub.fn(next, old)
		}
		if s.hooks != nil {
			s.hooks.AfterUpdate(s.name, old, next)
		}
	}
	enqueue(notify)
	return true
}

// Subscribe registers fn to run on every value change with (new, old).
// The returned cancel function is idempotent.
func (s *State[T]) Subscribe(fn func(newValue, oldValue T)) (cancel func()) {
	sub := &subscriber[T]{fn: fn}
	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			sub.cancelled = true
			for i, cur := range s.subs {
				if cur == sub {
					s.subs = append(s.subs[:i], s.subs[i+1:]...)
					break
				}
			}
			s.mu.Unlock()
		})
	}
}

// watch implements Source.
func (s *State[T]) watch(fn func()) (cancel func()) {
	return s.Subscribe(func(T, T) { fn() })
}

// defaultEqual reports whether two values are equal for change gating.
// Values of uncomparable types (slices, maps, funcs) always differ.
func defaultEqual[T any](a, b T) bool {
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}
	if !reflect.TypeOf(av).Comparable() {
		return false
	}
	return av == bv
}

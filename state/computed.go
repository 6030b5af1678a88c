package state

// Computed is a read-only state derived from one or more sources. It owns no
// independent value: every dependency notification triggers a full recompute,
// and the cached result gates whether its own subscribers fire.
//
// When several dependencies change outside a Batch, the recompute runs once
// per dependency notification and may over-notify intermediate values; inside
// a Batch the equality gate collapses them to one notification per net change.
type Computed[T any] struct {
	cell    *State[T]
	compute func() T
	cancels []func()
}

// Derived creates a computed state recalculated from deps via compute.
// compute runs once immediately to seed the cache.
func Derived[T any](compute func() T, deps ...Source) *Computed[T] {
	c := &Computed[T]{
		cell:    New(compute()),
		compute: compute,
	}
	for _, dep := range deps {
		c.cancels = append(c.cancels, dep.watch(c.recompute))
	}
	return c
}

func (c *Computed[T]) recompute() {
	c.cell.Set(c.compute())
}

// Name implements Source.
func (c *Computed[T]) Name() string { return c.cell.Name() }

// Get returns the cached derived value.
func (c *Computed[T]) Get() T { return c.cell.Get() }

// Subscribe registers fn to run when the derived value changes.
func (c *Computed[T]) Subscribe(fn func(newValue, oldValue T)) (cancel func()) {
	return c.cell.Subscribe(fn)
}

// watch implements Source so computed states can feed other computed states.
func (c *Computed[T]) watch(fn func()) (cancel func()) {
	return c.cell.watch(fn)
}

// Release unsubscribes from all dependencies. The Computed stops updating;
// Get keeps returning the last cached value.
func (c *Computed[T]) Release() {
	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = nil
}

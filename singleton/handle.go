package singleton

import "sync/atomic"

// control is the shared block behind every Handle of one instance. Once refs
// drops to zero the block is dead and can never be retained again.
type control[T any] struct {
	value   T
	refs    atomic.Int64
	destroy func(*control[T])
}

func newControl[T any](value T, destroy func(*control[T])) *control[T] {
	c := &control[T]{value: value, destroy: destroy}
	c.refs.Store(1)
	return c
}

// tryRetain adds an owner unless the block is already dead.
func (c *control[T]) tryRetain() bool {
	for {
		n := c.refs.Load()
		if n <= 0 {
			return false
		}
		if c.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (c *control[T]) release() {
	if c.refs.Add(-1) == 0 && c.destroy != nil {
		c.destroy(c)
	}
}

// Handle is one owner of a singleton instance. Handles obtained from the same
// live instance are identity-equal (see Same). Share adds a co-owner; every
// Handle must be released exactly once.
type Handle[T any] struct {
	c        *control[T]
	released atomic.Bool
}

// Instance returns the wrapped value. It panics once the handle is released.
func (h *Handle[T]) Instance() T {
	if h.released.Load() {
		panic("singleton: Instance called on a released handle")
	}
	return h.c.value
}

// UseCount returns the number of owners of the instance, including the
// keep-alive owner when present. A released handle reports zero.
func (h *Handle[T]) UseCount() int64 {
	if h == nil || h.released.Load() {
		return 0
	}
	return h.c.refs.Load()
}

// Same reports whether both handles refer to the same instance.
func (h *Handle[T]) Same(other *Handle[T]) bool {
	if h == nil || other == nil {
		return false
	}
	return h.c == other.c
}

// Share returns a new owner of the same instance.
func (h *Handle[T]) Share() *Handle[T] {
	if h.released.Load() || !h.c.tryRetain() {
		panic("singleton: Share called on a released handle")
	}
	return &Handle[T]{c: h.c}
}

// Release drops this owner. The instance is destroyed when its last owner is
// released. Releasing the same handle twice is a no-op.
func (h *Handle[T]) Release() {
	if h == nil || !h.released.CompareAndSwap(false, true) {
		return
	}
	h.c.release()
}

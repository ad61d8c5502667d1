// Package pool provides a typed free list for scratch values on hot paths,
// such as the label stacks used by canonical name comparison.
package pool

import "sync"

// Pool is a typed wrapper around sync.Pool.
//
// If a reset function is set, Put runs it before the value goes back to the
// pool, so callers cannot leak state (or references that keep name buffers
// alive) into the next Get.
type Pool[T any] struct {
	internal sync.Pool
	reset    func(T)
}

// New creates a Pool that allocates with newFn.
func New[T any](newFn func() T) *Pool[T] {
	return &Pool[T]{
		internal: sync.Pool{
			New: func() any {
				return newFn()
			},
		},
	}
}

// WithReset sets the function Put applies to returned values.
func (p *Pool[T]) WithReset(reset func(T)) *Pool[T] {
	p.reset = reset
	return p
}

// Get retrieves a value from the pool, allocating one if it is empty.
func (p *Pool[T]) Get() T {
	return p.internal.Get().(T)
}

// Put resets v and returns it to the pool.
func (p *Pool[T]) Put(v T) {
	if p.reset != nil {
		p.reset(v)
	}
	p.internal.Put(v)
}

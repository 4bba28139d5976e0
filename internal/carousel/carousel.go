// Package carousel tracks the selected entry of a fixed, circular sequence of items.
package carousel

import (
	"errors"
	"slices"
	"sync"
)

// ErrInvalidConfiguration is returned when a controller is built without items.
var ErrInvalidConfiguration = errors.New("carousel: invalid configuration")

// Change describes a selection update delivered to observers.
type Change struct {
	// Index is the selected index after the update.
	Index int
	// Previous is the selected index before the update.
	Previous int
}

// Changed reports whether the update moved the selection.
func (c Change) Changed() bool {
	return c.Index != c.Previous
}

// Controller maintains the current index over an immutable ordered list.
// The index is always in [0, Len()).
type Controller[T any] struct {
	items   []T
	current int

	mu        sync.Mutex
	observers map[int]func(Change)
	nextID    int
}

// New creates a controller positioned at the first item.
// The items are copied; later changes to the caller's slice are not observed.
func New[T any](items []T) (*Controller[T], error) {
	if len(items) == 0 {
		return nil, ErrInvalidConfiguration
	}
	owned := make([]T, len(items))
	copy(owned, items)
	return &Controller[T]{
		items:     owned,
		observers: make(map[int]func(Change)),
	}, nil
}

// Len returns the number of items.
func (c *Controller[T]) Len() int {
	return len(c.items)
}

// Index returns the current index.
func (c *Controller[T]) Index() int {
	return c.current
}

// Items returns a copy of the item sequence.
func (c *Controller[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Current returns the selected item.
func (c *Controller[T]) Current() T {
	return c.items[c.current]
}

// GoToIndex selects target after wrapping it into [0, Len()).
// Observers are notified even when the selection does not move.
func (c *Controller[T]) GoToIndex(target int) {
	prev := c.current
	c.current = Wrap(target, len(c.items))
	c.notify(Change{Index: c.current, Previous: prev})
}

// Advance moves the selection by offset positions, wrapping in both directions.
func (c *Controller[T]) Advance(offset int) {
	c.GoToIndex(c.current + Wrap(offset, len(c.items)))
}

// Next is Advance(1).
func (c *Controller[T]) Next() { c.Advance(1) }

// Prev is Advance(-1).
func (c *Controller[T]) Prev() { c.Advance(-1) }

// ItemAt returns the item offset positions away from the current one.
func (c *Controller[T]) ItemAt(offset int) T {
	return c.items[c.indexAt(offset)]
}

func (c *Controller[T]) indexAt(offset int) int {
	// current < n and the wrapped offset < n, so the sum cannot overflow.
	n := len(c.items)
	return Wrap(c.current+Wrap(offset, n), n)
}

// Subscribe registers fn for selection updates and returns a function that
// removes it. The returned function may be called more than once.
func (c *Controller[T]) Subscribe(fn func(Change)) func() {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	if c.observers == nil {
		c.observers = make(map[int]func(Change))
	}
	c.observers[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.observers, id)
			c.mu.Unlock()
		})
	}
}

// Close drops every observer. The controller stays readable but no longer
// reports changes.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	c.observers = nil
	c.mu.Unlock()
}

// notify calls observers in subscription order.
func (c *Controller[T]) notify(change Change) {
	c.mu.Lock()
	if len(c.observers) == 0 {
		c.mu.Unlock()
		return
	}
	ids := make([]int, 0, len(c.observers))
	for id := range c.observers {
		ids = append(ids, id)
	}
	fns := make([]func(Change), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, c.observers[id])
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(change)
	}
}

// Wrap normalizes i into [0, n) using floored modulo. n must be positive.
func Wrap(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}

// Package heap provides a generic array-backed binary heap with in-place
// re-sorting of elements whose key changed.
//
// The heap stores its complete binary tree in a slice with the root at index
// 1: the children of index i live at 2i and 2i+1 and its parent at i/2. Slot
// 0 is unused.
//
// Unlike container/heap, [Heap.Resort] accepts the element itself rather than
// an index. It finds the element with a linear identity scan and sifts it
// toward the root, which is what a search frontier needs after lowering a
// node's distance:
//
//	h := heap.New(func(a, b *Node) int { return cmp.Compare(a.Dist, b.Dist) })
//	h.Push(n)
//	n.Dist = 3
//	h.Resort(n)
//
// The scan makes Resort O(n). Frontiers on grids of at most 100x100 cells stay
// small enough for that to be cheap.
package heap

import (
	"cmp"
	"iter"
	"slices"
)

// DefaultCapacity is the number of elements a heap holds before its first
// growth.
const DefaultCapacity = 13

// Heap is a binary min-heap (or max-heap with [WithMaxHeap]) of comparable
// elements. Elements are compared for ordering with the function given to
// [New] and for identity with ==.
//
// The zero value is not usable; use [New] or [NewOrdered].
// Heap is not safe for concurrent use.
type Heap[E comparable] struct {
	items   []E // items[0] is unused
	size    int
	compare func(a, b E) int
}

type options struct {
	capacity int
	max      bool
}

// Option configures a Heap.
type Option func(*options)

// WithCapacity sets the initial capacity. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithMaxHeap makes the largest element the root.
func WithMaxHeap() Option {
	return func(o *options) { o.max = true }
}

// New creates an empty heap ordered by compare, which returns a negative
// number when a sorts before b, zero when they tie and a positive number
// otherwise.
func New[E comparable](compare func(a, b E) int, opts ...Option) *Heap[E] {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.max {
		less := compare
		compare = func(a, b E) int { return less(b, a) }
	}
	return &Heap[E]{
		items:   make([]E, o.capacity+1),
		compare: compare,
	}
}

// NewOrdered creates an empty heap using the natural ordering of E.
func NewOrdered[E cmp.Ordered](opts ...Option) *Heap[E] {
	return New(cmp.Compare[E], opts...)
}

// Len returns the number of elements.
func (h *Heap[E]) Len() int { return h.size }

// Empty reports whether the heap has no elements.
func (h *Heap[E]) Empty() bool { return h.size == 0 }

// Cap returns the number of elements the heap holds before growing.
func (h *Heap[E]) Cap() int { return len(h.items) - 1 }

// Push adds e, doubling the backing storage when it is full.
func (h *Heap[E]) Push(e E) {
	if h.size == h.Cap() {
		h.grow()
	}
	h.size++
	h.items[h.size] = e
	h.up(h.size)
}

// Peek returns the root without removing it.
func (h *Heap[E]) Peek() (E, bool) {
	if h.size == 0 {
		var zero E
		return zero, false
	}
	return h.items[1], true
}

// Pop removes and returns the root.
func (h *Heap[E]) Pop() (E, bool) {
	var zero E
	if h.size == 0 {
		return zero, false
	}
	root := h.items[1]
	h.items[1] = h.items[h.size]
	h.items[h.size] = zero
	h.size--
	if h.size > 1 {
		h.down(1)
	}
	return root, true
}

// Resort restores heap order after e's key moved toward the root (decreased
// in a min-heap, increased in a max-heap). It reports whether e was found.
func (h *Heap[E]) Resort(e E) bool {
	for i := 1; i <= h.size; i++ {
		if h.items[i] == e {
			h.up(i)
			return true
		}
	}
	return false
}

// Contains reports whether e is in the heap, by identity.
func (h *Heap[E]) Contains(e E) bool {
	return slices.Contains(h.items[1:h.size+1], e)
}

// Clear removes every element and keeps the capacity.
func (h *Heap[E]) Clear() {
	clear(h.items[1 : h.size+1])
	h.size = 0
}

// All yields the elements in heap-array order, which is not sorted order.
func (h *Heap[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 1; i <= h.size; i++ {
			if !yield(h.items[i]) {
				return
			}
		}
	}
}

// Items returns a copy of the elements in heap-array order.
func (h *Heap[E]) Items() []E {
	return slices.Clone(h.items[1 : h.size+1])
}

// Valid reports whether every parent sorts no later than its children.
func (h *Heap[E]) Valid() bool {
	for i := 2; i <= h.size; i++ {
		if h.compare(h.items[i], h.items[i/2]) < 0 {
			return false
		}
	}
	return true
}

func (h *Heap[E]) grow() {
	items := make([]E, 2*len(h.items))
	copy(items, h.items)
	h.items = items
}

func (h *Heap[E]) up(i int) {
	e := h.items[i]
	for i > 1 && h.compare(e, h.items[i/2]) < 0 {
		h.items[i] = h.items[i/2]
		i /= 2
	}
	h.items[i] = e
}

func (h *Heap[E]) down(i int) {
	e := h.items[i]
	for {
		child := 2 * i
		if child > h.size {
			break
		}
		if child < h.size && h.compare(h.items[child+1], h.items[child]) < 0 {
			child++
		}
		if h.compare(h.items[child], e) >= 0 {
			break
		}
		h.items[i] = h.items[child]
		i = child
	}
	h.items[i] = e
}

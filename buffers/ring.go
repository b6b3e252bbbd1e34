package buffers

import "math/bits"

// Ring is a fixed-limit circular buffer. Pushing into a full ring evicts the oldest
// element, which makes it the sliding buffer behind window adapters.
type Ring[T any] struct {
	buf   []T // backing array, length is a power of two >= limit
	head  int // index of the oldest element
	size  int // number of buffered elements
	mask  int // len(buf) - 1, used for fast modulo: idx & mask
	limit int // maximum number of buffered elements
}

// NewRing creates a Ring holding at most limit elements.
// A non-positive limit is treated as 1.
func NewRing[T any](limit int) *Ring[T] {
	if limit <= 0 {
		limit = 1
	}

	// next power of two >= limit
	capacity := 1
	if limit > 1 {
		capacity = 1 << uint(bits.Len(uint(limit-1)))
	}

	return &Ring[T]{
		buf:   make([]T, capacity),
		mask:  capacity - 1,
		limit: limit,
	}
}

// Push appends value at the newest end, evicting the oldest element if the ring
// is full.
func (r *Ring[T]) Push(value T) {
	if r.size == r.limit {
		var zero T
		r.buf[r.head] = zero // clear reference
		r.head = (r.head + 1) & r.mask
		r.size--
	}
	r.buf[(r.head+r.size)&r.mask] = value
	r.size++
}

// appendTo appends the buffered elements, oldest first, to dst and returns the
// extended slice. The ring is left untouched.
func (r *Ring[T]) appendTo(dst []T) []T {
	if r.head+r.size <= len(r.buf) {
		return append(dst, r.buf[r.head:r.head+r.size]...)
	}
	// wrapped around
	dst = append(dst, r.buf[r.head:]...)
	tail := (r.head + r.size) & r.mask
	return append(dst, r.buf[:tail]...)
}

// Snapshot returns a fresh slice with the buffered elements, oldest first.
func (r *Ring[T]) Snapshot() []T {
	return r.appendTo(make([]T, 0, r.size))
}

// Full reports whether the next Push will evict.
func (r *Ring[T]) Full() bool {
	return r.size == r.limit
}

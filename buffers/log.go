package buffers

import "iter"

// Log is an append-only, growable record of elements. Replaying adapters write every
// element they produce on the first pass and read it back on later passes.
//
// A Log grows without bound; memory use is proportional to the number of recorded
// elements.
type Log[T any] struct {
	data []T
}

func NewLog[T any]() *Log[T] {
	return &Log[T]{}
}

func (l *Log[T]) Append(values ...T) {
	l.data = append(l.data, values...)
}

func (l *Log[T]) Len() int {
	return len(l.data)
}

// Values replays the recorded elements in insertion order.
// Elements appended while ranging are visited too.
func (l *Log[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(l.data); i++ {
			if !yield(l.data[i]) {
				return
			}
		}
	}
}

package seqs

import (
	g "github.com/anacrolix/generics"
)

// Collect drains s into a slice.
func (s Seq[T]) Collect() ([]T, error) {
	out := []T{}
	for v, err := range s.items() {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Reduce folds s from left to right, seeding the accumulator with the first
// element. An empty s fails with ErrEmptyReduction.
func (s Seq[T]) Reduce(f func(acc, v T) T) (T, error) {
	var acc T
	seeded := false
	for v, err := range s.items() {
		if err != nil {
			return acc, err
		}
		if !seeded {
			acc, seeded = v, true
			continue
		}
		acc = f(acc, v)
	}
	if !seeded {
		return acc, emptyReduction("Reduce")
	}
	return acc, nil
}

// ReduceInit folds s from left to right starting from initial. An empty s
// returns initial.
func ReduceInit[T, R any](s Seq[T], initial R, f func(acc R, v T) R) (R, error) {
	acc := initial
	for v, err := range s.items() {
		if err != nil {
			return acc, err
		}
		acc = f(acc, v)
	}
	return acc, nil
}

// Count drains s and returns the number of elements.
func (s Seq[T]) Count() (int, error) {
	return s.CountIf(func(T) bool { return true })
}

// CountIf drains s and returns the number of elements satisfying pred.
func (s Seq[T]) CountIf(pred func(T) bool) (int, error) {
	return ReduceInit(s, 0, func(n int, v T) int {
		if pred(v) {
			n++
		}
		return n
	})
}

// Rate drains s and returns the fraction of elements satisfying pred.
// The rate of an empty sequence is NaN.
func (s Seq[T]) Rate(pred func(T) bool) (float64, error) {
	var matched, total float64
	for v, err := range s.items() {
		if err != nil {
			return 0, err
		}
		if pred(v) {
			matched++
		}
		total++
	}
	return matched / total, nil
}

// First returns the first element, pulling nothing more.
func (s Seq[T]) First() (g.Option[T], error) {
	for v, err := range s.items() {
		if err != nil {
			return g.None[T](), err
		}
		return g.Some(v), nil
	}
	return g.None[T](), nil
}

// Last drains s and returns its final element.
func (s Seq[T]) Last() (g.Option[T], error) {
	last := g.None[T]()
	for v, err := range s.items() {
		if err != nil {
			return g.None[T](), err
		}
		last = g.Some(v)
	}
	return last, nil
}

// Nth returns the element at position n, pulling no further.
func (s Seq[T]) Nth(n int) (g.Option[T], error) {
	if n < 0 {
		return g.None[T](), negativeArg("Nth", "index", n)
	}
	return s.Skip(n).First()
}

// Find returns the first element satisfying pred.
func (s Seq[T]) Find(pred func(T) bool) (g.Option[T], error) {
	for v, err := range s.items() {
		if err != nil {
			return g.None[T](), err
		}
		if pred(v) {
			return g.Some(v), nil
		}
	}
	return g.None[T](), nil
}

// Position returns the index of the first element satisfying pred.
func (s Seq[T]) Position(pred func(T) bool) (g.Option[int], error) {
	i := 0
	for v, err := range s.items() {
		if err != nil {
			return g.None[int](), err
		}
		if pred(v) {
			return g.Some(i), nil
		}
		i++
	}
	return g.None[int](), nil
}

// Every reports whether all elements satisfy pred. It stops at the first that
// does not; an empty s satisfies every predicate.
func (s Seq[T]) Every(pred func(T) bool) (bool, error) {
	for v, err := range s.items() {
		if err != nil {
			return false, err
		}
		if !pred(v) {
			return false, nil
		}
	}
	return true, nil
}

// Some reports whether any element satisfies pred, stopping at the first that does.
func (s Seq[T]) Some(pred func(T) bool) (bool, error) {
	for v, err := range s.items() {
		if err != nil {
			return false, err
		}
		if pred(v) {
			return true, nil
		}
	}
	return false, nil
}

// Partition drains s, splitting it into the elements that satisfy pred and those
// that do not. Both keep their relative order.
func (s Seq[T]) Partition(pred func(T) bool) (matches, rest []T, err error) {
	matches, rest = []T{}, []T{}
	for v, err := range s.items() {
		if err != nil {
			return matches, rest, err
		}
		if pred(v) {
			matches = append(matches, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matches, rest, nil
}

// ForEach calls fn on every element.
func (s Seq[T]) ForEach(fn func(T)) error {
	for v, err := range s.items() {
		if err != nil {
			return err
		}
		fn(v)
	}
	return nil
}

// Consume drains s for its side effects.
func (s Seq[T]) Consume() error {
	return s.ForEach(func(T) {})
}

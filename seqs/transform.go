package seqs

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"lazyseq/buffers"

	"golang.org/x/exp/constraints"
)

// MaxFlattenDepth bounds the depth accepted by FlattenDepth.
const MaxFlattenDepth = 10

// Map applies f to each element of s together with its position. The position
// restarts at 0 on every traversal.
func Map[T, R any](s Seq[T], f func(T, int) R) Seq[R] {
	return derive(s, func(yield func(R, error) bool) {
		i := 0
		for v, err := range s.items() {
			if err != nil {
				var zero R
				yield(zero, err)
				return
			}
			if !yield(f(v, i), nil) {
				return
			}
			i++
		}
	})
}

// Map is the element-type preserving form of the package-level Map.
func (s Seq[T]) Map(f func(T, int) T) Seq[T] {
	return Map(s, f)
}

// Filter yields only the elements satisfying pred. The index passed to pred is the
// element's position in s, counting rejected elements too.
func (s Seq[T]) Filter(pred func(T, int) bool) Seq[T] {
	return derive(s, func(yield func(T, error) bool) {
		i := 0
		for v, err := range s.items() {
			if err != nil {
				yield(v, err)
				return
			}
			keep := pred(v, i)
			i++
			if keep && !yield(v, nil) {
				return
			}
		}
	})
}

// Inspect calls fn on each element as it passes through, without modifying it.
// It is useful for debugging (e.g., logging) or side effects.
func (s Seq[T]) Inspect(fn func(T)) Seq[T] {
	return derive(s, func(yield func(T, error) bool) {
		for v, err := range s.items() {
			if err != nil {
				yield(v, err)
				return
			}
			fn(v)
			if !yield(v, nil) {
				return
			}
		}
	})
}

// Enumerate pairs each element with its zero-based position: V1 is the index and
// V2 the element.
func Enumerate[T any](s Seq[T]) Seq[Pair[int, T]] {
	return Map(s, func(v T, i int) Pair[int, T] {
		return Pair[int, T]{V1: i, V2: v}
	})
}

// Stretch repeats every element n times in a row before moving on.
// Stretch(0) is empty.
func (s Seq[T]) Stretch(n int) Seq[T] {
	if n < 0 {
		return failed[T, T](s, negativeArg("Stretch", "count", n))
	}
	return derive(s, func(yield func(T, error) bool) {
		if n == 0 {
			return
		}
		for v, err := range s.items() {
			if err != nil {
				yield(v, err)
				return
			}
			for range n {
				if !yield(v, nil) {
					return
				}
			}
		}
	})
}

// Accumulate yields the running result of folding f over s, starting with the first
// element itself. An empty s fails with ErrEmptyReduction when consumed.
func (s Seq[T]) Accumulate(f func(acc, v T) T) Seq[T] {
	return derive(s, func(yield func(T, error) bool) {
		var acc T
		seeded := false
		for v, err := range s.items() {
			if err != nil {
				yield(v, err)
				return
			}
			if seeded {
				acc = f(acc, v)
			} else {
				acc, seeded = v, true
			}
			if !yield(acc, nil) {
				return
			}
		}
		if !seeded {
			yield(acc, emptyReduction("Accumulate"))
		}
	})
}

// AccumulateFrom yields initial, then the running result of folding f over s.
// It never fails on an empty s: the result is then just initial.
func AccumulateFrom[T, R any](s Seq[T], initial R, f func(acc R, v T) R) Seq[R] {
	return derive(s, func(yield func(R, error) bool) {
		acc := initial
		if !yield(acc, nil) {
			return
		}
		for v, err := range s.items() {
			if err != nil {
				yield(acc, err)
				return
			}
			acc = f(acc, v)
			if !yield(acc, nil) {
				return
			}
		}
	})
}

// Flatten concatenates the inner sequences of s.
func Flatten[T any](s Seq[Seq[T]]) Seq[T] {
	return derive(s, func(yield func(T, error) bool) {
		for inner, err := range s.items() {
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for v, err := range inner.items() {
				if !yield(v, err) || err != nil {
					return
				}
			}
		}
	})
}

// FlattenSlices concatenates the slices yielded by s.
func FlattenSlices[T any](s Seq[[]T]) Seq[T] {
	return derive(s, func(yield func(T, error) bool) {
		for chunk, err := range s.items() {
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, v := range chunk {
				if !yield(v, nil) {
					return
				}
			}
		}
	})
}

// Enumerable is implemented by dynamic elements that FlattenDepth and UnzipAny
// descend into. Seq[any] implements it.
type Enumerable interface {
	All() iter.Seq[any]
}

// boxedSeq is implemented by every Seq[T], whatever T.
type boxedSeq interface {
	anyItems() iter.Seq2[any, error]
}

func (s Seq[T]) anyItems() iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		for v, err := range s.items() {
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// enumerable reports whether v can be descended into and returns its elements.
// Any Seq, Enumerable, iter.Seq[any], slice or array qualifies; strings do not.
func enumerable(v any) (iter.Seq2[any, error], bool) {
	switch x := v.(type) {
	case boxedSeq:
		return x.anyItems(), true
	case Enumerable:
		return wrap(x.All()).items(), true
	case []any:
		return wrap(slices.Values(x)).items(), true
	case iter.Seq[any]:
		return wrap(x).items(), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return wrap(func(yield func(any) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		}).items(), true
	default:
		return nil, false
	}
}

// FlattenDepth unwraps enumerable elements (any Seq, [Enumerable], iter.Seq[any],
// slices and arrays) up to depth levels. Other elements are yielded as-is.
// Depth 0 yields s unchanged. Depths outside 0..MaxFlattenDepth are an error.
func FlattenDepth(s Seq[any], depth int) Seq[any] {
	if depth < 0 || depth > MaxFlattenDepth {
		return failed[any, any](s, fmt.Errorf("seqs: FlattenDepth: invalid depth %d, want 0..%d: %w",
			depth, MaxFlattenDepth, ErrInvalidArgument))
	}
	return derive(s, func(yield func(any, error) bool) {
		for v, err := range s.items() {
			if err != nil {
				yield(nil, err)
				return
			}
			if !flattenInto(v, depth, yield) {
				return
			}
		}
	})
}

// flattenInto reports false once yield asked to stop or an error was yielded.
func flattenInto(v any, depth int, yield func(any, error) bool) bool {
	if depth > 0 {
		if inner, ok := enumerable(v); ok {
			for x, err := range inner {
				if err != nil {
					yield(nil, err)
					return false
				}
				if !flattenInto(x, depth-1, yield) {
					return false
				}
			}
			return true
		}
	}
	return yield(v, nil)
}

// Unique yields the first occurrence of every distinct element.
// It remembers every distinct element seen, so memory grows with the input.
func Unique[T comparable](s Seq[T]) Seq[T] {
	return UniqueBy(s, func(v T) T { return v })
}

// UniqueBy yields the first element for every distinct key. Keys are compared with
// ==. Memory grows with the number of distinct keys.
func UniqueBy[T any, K comparable](s Seq[T], key func(T) K) Seq[T] {
	return derive(s, func(yield func(T, error) bool) {
		seen := buffers.NewSeen[K]()
		for v, err := range s.items() {
			if err != nil {
				yield(v, err)
				return
			}
			if seen.Add(key(v)) && !yield(v, nil) {
				return
			}
		}
	})
}

// Nest pairs every element of s with every element of other, in row-major order.
// other is traversed once per element of s, so it must be restartable.
func Nest[T, U any](s Seq[T], other Seq[U]) Seq[Pair[T, U]] {
	if s.err == nil && other.err != nil {
		return fail[Pair[T, U]](other.err)
	}
	return derive(s, func(yield func(Pair[T, U], error) bool) {
		for v, err := range s.items() {
			if err != nil {
				yield(Pair[T, U]{}, err)
				return
			}
			for u, err := range other.items() {
				if err != nil {
					yield(Pair[T, U]{}, err)
					return
				}
				if !yield(Pair[T, U]{v, u}, nil) {
					return
				}
			}
		}
	})
}

// NestRange is Nest(s, Range(start, end)) without building the inner sequence.
func NestRange[T any, N constraints.Integer](s Seq[T], start, end N) Seq[Pair[T, N]] {
	return derive(s, func(yield func(Pair[T, N], error) bool) {
		for v, err := range s.items() {
			if err != nil {
				yield(Pair[T, N]{}, err)
				return
			}
			for n := start; n != end; {
				if !yield(Pair[T, N]{v, n}, nil) {
					return
				}
				if start < end {
					n++
				} else {
					n--
				}
			}
		}
	})
}

package seqs

import (
	"fmt"
	"iter"
	"slices"

	g "github.com/anacrolix/generics"
	"golang.org/x/exp/constraints"
)

// Of returns a sequence over the given values. The values are not copied; the
// sequence may be traversed any number of times.
func Of[T any](values ...T) Seq[T] {
	return wrap(slices.Values(values))
}

// From wraps an existing iterator. Whether the result can be traversed more than
// once depends on seq.
func From[T any](seq iter.Seq[T]) Seq[T] {
	if seq == nil {
		return Seq[T]{}
	}
	return wrap(seq)
}

// FromPull wraps a one-shot pull function. The first traversal drains next until it
// reports false; later traversals continue from wherever next left off, which for an
// exhausted source means they are empty.
func FromPull[T any](next func() (T, bool)) Seq[T] {
	return wrap(func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	})
}

// Once returns a sequence with exactly one element.
func Once[T any](value T) Seq[T] {
	return wrap(func(yield func(T) bool) {
		yield(value)
	})
}

// Repeat returns a sequence with count copies of value.
func Repeat[T any](value T, count int) Seq[T] {
	if count < 0 {
		return fail[T](negativeArg("Repeat", "count", count))
	}
	return wrap(func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	})
}

// Range yields the integers from start up to end, exclusive. The direction is
// derived from the bounds: ascending by 1 when start < end, descending by 1 when
// start > end, and empty when they are equal.
func Range[N constraints.Integer](start, end N) Seq[N] {
	return rangeOf(start, g.Some(end), 1, start > end)
}

// RangeFrom yields start, start+1, ... without end. Consumers must bound it
// themselves, for example with [Seq.Take].
func RangeFrom[N constraints.Integer](start N) Seq[N] {
	return rangeOf(start, g.None[N](), 1, false)
}

// RangeStep yields start, start+step, ... up to end, exclusive. A step whose sign
// does not lead from start towards end yields nothing. A zero step is an error.
func RangeStep[N constraints.Integer](start, end, step N) Seq[N] {
	switch {
	case step == 0:
		return fail[N](fmt.Errorf("seqs: RangeStep: invalid step 0: %w", ErrInvalidArgument))
	case step < 0:
		return rangeOf(start, g.Some(end), uint64(0)-uint64(step), true)
	default:
		return rangeOf(start, g.Some(end), uint64(step), false)
	}
}

// rangeOf walks from start by stride (always positive) in the given direction.
// An absent end means unbounded.
// Distances are computed in uint64, where sign extension and wrapping subtraction
// give the true span for every integer width.
func rangeOf[N constraints.Integer](start N, end g.Option[N], stride uint64, down bool) Seq[N] {
	return wrap(func(yield func(N) bool) {
		i := start
		if end.Ok && (down && i <= end.Value || !down && i >= end.Value) {
			return
		}
		for {
			if !yield(i) {
				return
			}
			// stop before i overflows past end
			if end.Ok && (down && uint64(i)-uint64(end.Value) <= stride ||
				!down && uint64(end.Value)-uint64(i) <= stride) {
				return
			}
			if down {
				i -= N(stride)
			} else {
				i += N(stride)
			}
		}
	})
}

// Chain concatenates sources in argument order. A source is not touched until every
// source before it is exhausted.
func Chain[T any](sources ...Seq[T]) Seq[T] {
	for _, s := range sources {
		if s.err != nil {
			return fail[T](s.err)
		}
	}
	sources = slices.Clone(sources)
	return Seq[T]{src: func(yield func(T, error) bool) {
		for _, s := range sources {
			for v, err := range s.items() {
				if !yield(v, err) || err != nil {
					return
				}
			}
		}
	}}
}

// Chain appends others after s is exhausted.
func (s Seq[T]) Chain(others ...Seq[T]) Seq[T] {
	return Chain(append([]Seq[T]{s}, others...)...)
}

// Pair holds two values. Enumerate stores the index in V1.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip pulls one element from each source in lock-step and yields them as a tuple,
// stopping as soon as any source is exhausted. Zip with no sources is empty.
//
// The method form of zip is Zip(s, others...).
func Zip[T any](sources ...Seq[T]) Seq[[]T] {
	for _, s := range sources {
		if s.err != nil {
			return fail[[]T](s.err)
		}
	}
	sources = slices.Clone(sources)
	return Seq[[]T]{src: func(yield func([]T, error) bool) {
		if len(sources) == 0 {
			return
		}
		nexts := make([]func() (T, error, bool), len(sources))
		for i, s := range sources {
			next, stop := iter.Pull2(s.items())
			defer stop()
			nexts[i] = next
		}
		for {
			tuple := make([]T, len(nexts))
			for i, next := range nexts {
				v, err, ok := next()
				if !ok {
					return
				}
				if err != nil {
					yield(nil, err)
					return
				}
				tuple[i] = v
			}
			if !yield(tuple, nil) {
				return
			}
		}
	}}
}

// Zip2 pairs two sequences of different element types, shortest wins.
func Zip2[T1, T2 any](seq1 Seq[T1], seq2 Seq[T2]) Seq[Pair[T1, T2]] {
	if seq1.err != nil {
		return fail[Pair[T1, T2]](seq1.err)
	}
	if seq2.err != nil {
		return fail[Pair[T1, T2]](seq2.err)
	}
	return Seq[Pair[T1, T2]]{src: func(yield func(Pair[T1, T2], error) bool) {
		next2, stop2 := iter.Pull2(seq2.items())
		defer stop2()

		for v1, err := range seq1.items() {
			if err != nil {
				yield(Pair[T1, T2]{}, err)
				return
			}
			v2, err, ok := next2()
			if !ok {
				return
			}
			if err != nil {
				yield(Pair[T1, T2]{}, err)
				return
			}
			if !yield(Pair[T1, T2]{v1, v2}, nil) {
				return
			}
		}
	}}
}

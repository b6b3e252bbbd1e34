package seqs

import "iter"

// Seq is a lazy, pull-based sequence of T.
//
// A Seq wraps a producer: ranging it restarts production from the beginning of
// whatever the producer closes over. Sequences built from slices or ranges can be
// traversed any number of times; sequences over one-shot sources (see [FromPull])
// are empty on every traversal after the first.
//
// Adapters never modify their receiver. Each call returns a new Seq whose producer
// drives the receiver's producer one element at a time.
//
// The zero Seq is an empty sequence. A Seq must not be consumed from two call
// sites at once.
type Seq[T any] struct {
	// src yields (zero, err) as its final item when production fails.
	src iter.Seq2[T, error]
	// err is the construction error of this chain, reported by Err.
	err error
}

// wrap lifts a plain iterator into a Seq.
func wrap[T any](seq iter.Seq[T]) Seq[T] {
	return Seq[T]{src: func(yield func(T, error) bool) {
		for v := range seq {
			if !yield(v, nil) {
				return
			}
		}
	}}
}

// fail returns a Seq whose construction failed with err.
func fail[T any](err error) Seq[T] {
	return Seq[T]{
		err: err,
		src: func(yield func(T, error) bool) {
			var zero T
			yield(zero, err)
		},
	}
}

// failed is fail for an adapter call on s. An error already recorded on s wins.
func failed[T, R any](s Seq[T], err error) Seq[R] {
	if s.err != nil {
		return fail[R](s.err)
	}
	return fail[R](err)
}

// derive builds the output Seq of an adapter applied to s.
func derive[T, R any](s Seq[T], src iter.Seq2[R, error]) Seq[R] {
	if s.err != nil {
		return fail[R](s.err)
	}
	return Seq[R]{src: src}
}

// items returns the producer of s, never nil.
func (s Seq[T]) items() iter.Seq2[T, error] {
	if s.src == nil {
		return func(func(T, error) bool) {}
	}
	return s.src
}

// Err returns the first invalid-argument error raised while building the chain
// that ends in s, or nil. It does not consume anything.
func (s Seq[T]) Err() error {
	return s.err
}

// All returns an iterator over the elements of s, for use with range.
// Iteration stops silently at the first error; use [Seq.TryAll] or a consumer
// method to observe it.
func (s Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, err := range s.items() {
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// TryAll returns the error-carrying iterator of s.
// A non-nil error is always the last pair produced.
func (s Seq[T]) TryAll() iter.Seq2[T, error] {
	return s.items()
}

// Pull converts s into a pull-style iterator. Callers must call stop when they are
// done with next, unless next already reported false.
//
// Like All, next reports false at the first error as if the input had ended; use
// [Seq.Pull2] to tell the two apart.
func (s Seq[T]) Pull() (next func() (T, bool), stop func()) {
	return iter.Pull(s.All())
}

// Pull2 is Pull over the error-carrying iterator: a non-nil error is the last pair
// next returns before reporting false.
func (s Seq[T]) Pull2() (next func() (T, error, bool), stop func()) {
	return iter.Pull2(s.items())
}

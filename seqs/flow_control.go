package seqs

import (
	"fmt"

	"lazyseq/buffers"

	g "github.com/anacrolix/generics"
)

// Take yields at most the first n elements. Once n elements have been yielded the
// source is not pulled again, so Take bounds infinite sequences.
func (s Seq[T]) Take(n int) Seq[T] {
	if n < 0 {
		return failed[T, T](s, negativeArg("Take", "count", n))
	}
	return derive(s, func(yield func(T, error) bool) {
		if n == 0 {
			return
		}
		count := 0
		for v, err := range s.items() {
			if !yield(v, err) || err != nil {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	})
}

// Skip drops the first n elements. Skipping past the end yields nothing.
func (s Seq[T]) Skip(n int) Seq[T] {
	if n < 0 {
		return failed[T, T](s, negativeArg("Skip", "count", n))
	}
	return derive(s, func(yield func(T, error) bool) {
		skipped := 0
		for v, err := range s.items() {
			if err == nil && skipped < n {
				skipped++
				continue
			}
			if !yield(v, err) || err != nil {
				return
			}
		}
	})
}

// TakeWhile yields elements as long as pred holds, stopping at (and excluding) the
// first element for which it does not.
func (s Seq[T]) TakeWhile(pred func(T, int) bool) Seq[T] {
	return derive(s, func(yield func(T, error) bool) {
		i := 0
		for v, err := range s.items() {
			if err != nil {
				yield(v, err)
				return
			}
			if !pred(v, i) {
				return // Condition not met, terminate the stream
			}
			i++
			if !yield(v, nil) {
				return
			}
		}
	})
}

// SkipWhile drops elements as long as pred holds, then yields the first element
// for which it does not and everything after it. The index passed to pred is the
// number of elements dropped so far.
func (s Seq[T]) SkipWhile(pred func(T, int) bool) Seq[T] {
	return derive(s, func(yield func(T, error) bool) {
		dropping := true
		i := 0
		for v, err := range s.items() {
			if err == nil && dropping {
				if pred(v, i) {
					i++
					continue
				}
				dropping = false
			}
			if !yield(v, err) || err != nil {
				return
			}
		}
	})
}

// Slice yields the elements at positions start (inclusive) to end (exclusive).
// It is Skip(start).Take(end-start); use Skip alone for an open end.
func (s Seq[T]) Slice(start, end int) Seq[T] {
	switch {
	case start < 0:
		return failed[T, T](s, negativeArg("Slice", "start", start))
	case end < 0:
		return failed[T, T](s, negativeArg("Slice", "end", end))
	case start > end:
		return failed[T, T](s, fmt.Errorf("seqs: Slice: start %d is greater than end %d: %w",
			start, end, ErrInvalidArgument))
	}
	return s.Skip(start).Take(end - start)
}

// Step yields every nth element, starting with the first: positions 0, n, 2n, ...
func (s Seq[T]) Step(n int) Seq[T] {
	if n <= 0 {
		return failed[T, T](s, nonPositiveArg("Step", "step", n))
	}
	return derive(s, func(yield func(T, error) bool) {
		i := 0
		for v, err := range s.items() {
			if err == nil && i%n != 0 {
				i++
				continue
			}
			if !yield(v, err) || err != nil {
				return
			}
			i++
		}
	})
}

// Cycle repeats s forever. The first pass records every element it yields and later
// passes replay the recording, so memory grows with the length of s: cycling an
// infinite sequence grows without bound. Cycling an empty sequence is empty.
func (s Seq[T]) Cycle() Seq[T] {
	return s.cycle(g.None[int]())
}

// CycleN repeats s n times, buffering like Cycle. CycleN(0) is empty.
func (s Seq[T]) CycleN(n int) Seq[T] {
	if n < 0 {
		return failed[T, T](s, negativeArg("CycleN", "count", n))
	}
	return s.cycle(g.Some(n))
}

// cycle replays s the given number of times; an absent count means forever.
func (s Seq[T]) cycle(times g.Option[int]) Seq[T] {
	return derive(s, func(yield func(T, error) bool) {
		if times.Ok && times.Value == 0 {
			return
		}
		recorded := buffers.NewLog[T]()
		for v, err := range s.items() {
			if err != nil {
				yield(v, err)
				return
			}
			recorded.Append(v)
			if !yield(v, nil) {
				return
			}
		}
		if recorded.Len() == 0 {
			return
		}
		for pass := 1; !times.Ok || pass < times.Value; pass++ {
			for v := range recorded.Values() {
				if !yield(v, nil) {
					return
				}
			}
		}
	})
}

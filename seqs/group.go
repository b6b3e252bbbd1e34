package seqs

import (
	"fmt"

	"lazyseq/buffers"
)

// Chunks splits s into consecutive groups of size elements.
// The last chunk may be smaller if there are not enough elements; an empty s
// yields no chunks.
func Chunks[T any](s Seq[T], size int) Seq[[]T] {
	if size <= 0 {
		return failed[T, []T](s, nonPositiveArg("Chunks", "size", size))
	}
	return derive(s, func(yield func([]T, error) bool) {
		batch := make([]T, 0, size)

		for v, err := range s.items() {
			if err != nil {
				yield(nil, err)
				return
			}
			batch = append(batch, v)
			if len(batch) == size {
				if !yield(batch, nil) {
					return
				}
				batch = make([]T, 0, size)
			}
		}
		if len(batch) > 0 {
			yield(batch, nil)
		}
	})
}

// Windows yields every contiguous run of size elements, sliding by one.
// For example, [1,2,3], [2,3,4] for size 3 over 1..4.
//
// If s has fewer than size elements in total, Windows yields exactly one window
// holding all of them (an empty window for an empty s).
func Windows[T any](s Seq[T], size int) Seq[[]T] {
	if size <= 0 {
		return failed[T, []T](s, nonPositiveArg("Windows", "size", size))
	}
	return derive(s, func(yield func([]T, error) bool) {
		window := buffers.NewRing[T](size)
		emitted := false

		for v, err := range s.items() {
			if err != nil {
				yield(nil, err)
				return
			}
			window.Push(v)
			if !window.Full() {
				continue
			}
			emitted = true
			if !yield(window.Snapshot(), nil) {
				return
			}
		}
		if !emitted {
			yield(window.Snapshot(), nil)
		}
	})
}

// Unzip drains s and returns one column per tuple position. Rows of different
// lengths widen the result to the longest row; shorter rows simply do not
// contribute to the extra columns.
func Unzip[T any](s Seq[[]T]) ([][]T, error) {
	columns := [][]T{}
	for row, err := range s.items() {
		if err != nil {
			return columns, err
		}
		for len(columns) < len(row) {
			columns = append(columns, []T{})
		}
		for i, v := range row {
			columns[i] = append(columns[i], v)
		}
	}
	return columns, nil
}

// Unzip2 drains a sequence of pairs into two slices.
func Unzip2[T1, T2 any](s Seq[Pair[T1, T2]]) ([]T1, []T2, error) {
	firsts, seconds := []T1{}, []T2{}
	for p, err := range s.items() {
		if err != nil {
			return firsts, seconds, err
		}
		firsts = append(firsts, p.V1)
		seconds = append(seconds, p.V2)
	}
	return firsts, seconds, nil
}

// UnzipAny is Unzip for dynamically typed rows. Every element must be enumerable
// (any Seq, [Enumerable], iter.Seq[any], slice or array), otherwise it fails with
// ErrTypeMismatch.
func UnzipAny(s Seq[any]) ([][]any, error) {
	columns := [][]any{}
	i := 0
	for v, err := range s.items() {
		if err != nil {
			return columns, err
		}
		inner, ok := enumerable(v)
		if !ok {
			return columns, fmt.Errorf("seqs: UnzipAny: element %d of type %T is not enumerable: %w",
				i, v, ErrTypeMismatch)
		}
		col := 0
		for x, err := range inner {
			if err != nil {
				return columns, err
			}
			if col == len(columns) {
				columns = append(columns, []any{})
			}
			columns[col] = append(columns[col], x)
			col++
		}
		i++
	}
	return columns, nil
}

package seqs_test

import (
	"testing"

	"lazyseq/seqs"

	"github.com/stretchr/testify/require"
)

// collect drains s and fails the test on error.
func collect[T any](t *testing.T, s seqs.Seq[T]) []T {
	t.Helper()
	out, err := s.Collect()
	require.NoError(t, err)
	return out
}

// countingSource yields 0..n-1 and records how many elements were pulled.
func countingSource(n int, pulled *int) seqs.Seq[int] {
	return seqs.From(func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			*pulled++
			if !yield(i) {
				return
			}
		}
	})
}

// naturals is an infinite source that records how many elements were pulled.
func naturals(pulled *int) seqs.Seq[int] {
	return seqs.From(func(yield func(int) bool) {
		for i := 0; ; i++ {
			*pulled++
			if !yield(i) {
				return
			}
		}
	})
}

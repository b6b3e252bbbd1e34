package seqs_test

import (
	"slices"
	"strconv"
	"testing"

	"lazyseq/seqs"
)

// heavyCalc simulates a CPU intensive operation
func heavyCalc(x int) int {
	for i := 0; i < 1000; i++ {
		x = (x + i*i) % 10000
	}
	return x
}

// BenchmarkPipeline compares a composed Seq chain with the equivalent hand-written
// loop over a slice.
func BenchmarkPipeline(b *testing.B) {
	size := 100_000
	input := make([]int, size)
	for i := 0; i < size; i++ {
		input[i] = i
	}

	workloads := []struct {
		name      string
		transform func(int) int
	}{
		{name: "Light", transform: func(x int) int { return x * 2 }},
		{name: "Heavy", transform: heavyCalc},
	}

	for _, w := range workloads {
		b.Run(w.name+"/Loop", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				out := make([]int, 0, size/2)
				for _, v := range input {
					if r := w.transform(v); r%2 == 0 {
						out = append(out, r)
					}
				}
				_ = out
			}
		})

		b.Run(w.name+"/Seq", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = seqs.Of(input...).
					Map(func(v, _ int) int { return w.transform(v) }).
					Filter(func(v, _ int) bool { return v%2 == 0 }).
					Collect()
			}
		})
	}
}

func BenchmarkWindows(b *testing.B) {
	input := slices.Collect(seqs.Range(0, 10_000).All())
	for _, size := range []int{2, 16, 128} {
		b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = seqs.Windows(seqs.Of(input...), size).Consume()
			}
		})
	}
}

func BenchmarkCycle(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = seqs.Range(0, 64).Cycle().Take(10_000).Consume()
	}
}


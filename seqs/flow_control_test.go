package seqs_test

import (
	"testing"

	"lazyseq/seqs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTake(t *testing.T) {
	src := []int{1, 2, 3}
	for n := 0; n <= 5; n++ {
		count, err := seqs.Of(src...).Take(n).Count()
		require.NoError(t, err)
		assert.Equal(t, min(n, len(src)), count, "Take(%d)", n)
	}
	assert.ErrorIs(t, seqs.Of(src...).Take(-1).Err(), seqs.ErrInvalidArgument)
}

func TestTake_StopsPulling(t *testing.T) {
	pulled := 0
	assert.Equal(t, []int{0, 1, 2}, collect(t, naturals(&pulled).Take(3)))
	assert.Equal(t, 3, pulled)

	pulled = 0
	assert.Equal(t, []int{}, collect(t, naturals(&pulled).Take(0)))
	assert.Equal(t, 0, pulled)
}

func TestSkip(t *testing.T) {
	assert.Equal(t, []int{3, 4}, collect(t, seqs.Range(0, 5).Skip(3)))
	assert.Equal(t, []int{}, collect(t, seqs.Range(0, 5).Skip(10)))
	assert.Equal(t, []int{0, 1}, collect(t, seqs.Range(0, 2).Skip(0)))
	assert.ErrorIs(t, seqs.Range(0, 5).Skip(-1).Err(), seqs.ErrInvalidArgument)
}

func TestTakeWhile(t *testing.T) {
	lessThan3 := func(v, _ int) bool { return v < 3 }
	assert.Equal(t, []int{0, 1, 2}, collect(t, seqs.RangeFrom(0).TakeWhile(lessThan3)))
	assert.Equal(t, []int{}, collect(t, seqs.Of(5, 1).TakeWhile(lessThan3)))
	assert.Equal(t, []int{}, collect(t, seqs.Of[int]().TakeWhile(lessThan3)))
}

func TestSkipWhile(t *testing.T) {
	lessThan3 := func(v, _ int) bool { return v < 3 }
	assert.Equal(t, []int{3, 1, 4}, collect(t, seqs.Of(0, 1, 3, 1, 4).SkipWhile(lessThan3)))
	assert.Equal(t, []int{}, collect(t, seqs.Of(0, 1, 2).SkipWhile(lessThan3)))
	assert.Equal(t, []int{}, collect(t, seqs.Of[int]().SkipWhile(lessThan3)))
}

func TestSkipWhile_IndexCountsDropped(t *testing.T) {
	var indices []int
	got := collect(t, seqs.Of("a", "b", "c", "d").SkipWhile(func(_ string, i int) bool {
		indices = append(indices, i)
		return i < 2
	}))
	assert.Equal(t, []string{"c", "d"}, got)
	assert.Equal(t, []int{0, 1, 2}, indices, "pred stops being called once dropping ends")
}

func TestSlice(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4}, collect(t, seqs.RangeFrom(0).Slice(2, 5)))
	assert.Equal(t, []int{}, collect(t, seqs.Range(0, 5).Slice(3, 3)))
	assert.Equal(t, []int{4}, collect(t, seqs.Range(0, 5).Slice(4, 9)))

	for _, bounds := range [][2]int{{-1, 2}, {0, -2}, {3, 1}} {
		assert.ErrorIs(t, seqs.Range(0, 5).Slice(bounds[0], bounds[1]).Err(), seqs.ErrInvalidArgument,
			"Slice(%d, %d)", bounds[0], bounds[1])
	}
}

func TestStep(t *testing.T) {
	assert.Equal(t, []int{0, 3, 6, 9}, collect(t, seqs.Range(0, 10).Step(3)))
	assert.Equal(t, []int{0, 1, 2}, collect(t, seqs.Range(0, 3).Step(1)))
	assert.Equal(t, []int{}, collect(t, seqs.Of[int]().Step(2)))
	assert.ErrorIs(t, seqs.Range(0, 3).Step(0).Err(), seqs.ErrInvalidArgument)
	assert.ErrorIs(t, seqs.Range(0, 3).Step(-2).Err(), seqs.ErrInvalidArgument)
}

func TestCycleN(t *testing.T) {
	assert.Equal(t, []int{1, 2, 1, 2, 1, 2}, collect(t, seqs.Of(1, 2).CycleN(3)))
	assert.Equal(t, []int{1, 2}, collect(t, seqs.Of(1, 2).CycleN(1)))
	assert.Equal(t, []int{}, collect(t, seqs.Of(1, 2).CycleN(0)))
	assert.ErrorIs(t, seqs.Of(1).CycleN(-1).Err(), seqs.ErrInvalidArgument)
}

func TestCycle_BuffersFirstPass(t *testing.T) {
	pulled := 0
	got := collect(t, countingSource(3, &pulled).Cycle().Take(8))
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0, 1}, got)
	assert.Equal(t, 3, pulled, "later passes replay from the buffer")
}

func TestCycle_EmptySourceTerminates(t *testing.T) {
	assert.Equal(t, []int{}, collect(t, seqs.Of[int]().Cycle()))
}

type point struct{ X, Y int }

func (p point) add(q point) point { return point{p.X + q.X, p.Y + q.Y} }

// Walks a grid of height 4 and width 9 in a zig-zag: three steps down, three steps
// diagonally up-right, repeated until the walk leaves the grid on the right.
func TestZigZagTraversal(t *testing.T) {
	const width = 9
	var (
		down    = point{0, 1}
		upRight = point{1, -1}
	)

	moves := seqs.Of(down, upRight).Stretch(3).Cycle()
	walk := seqs.AccumulateFrom(moves, point{0, 0}, point.add).
		TakeWhile(func(p point, _ int) bool { return p.X < width })

	want := []point{
		{0, 0}, {0, 1}, {0, 2}, {0, 3},
		{1, 2}, {2, 1}, {3, 0},
		{3, 1}, {3, 2}, {3, 3},
		{4, 2}, {5, 1}, {6, 0},
		{6, 1}, {6, 2}, {6, 3},
		{7, 2}, {8, 1},
	}
	got := collect(t, walk)
	assert.Equal(t, want, got)
	for _, p := range got {
		assert.True(t, p.Y >= 0 && p.Y < 4, "%v left the grid", p)
	}
}

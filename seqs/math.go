package seqs

import (
	g "github.com/anacrolix/generics"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[N Number](s Seq[N]) (N, error) {
	return ReduceInit(s, N(0), func(total, v N) N {
		return total + v
	})
}

func Min[N Number](s Seq[N]) (g.Option[N], error) {
	return MinBy(s, func(v N) N { return v })
}

func Max[N Number](s Seq[N]) (g.Option[N], error) {
	return MaxBy(s, func(v N) N { return v })
}

// MinBy returns the element with the smallest key. Ties keep the earliest element.
func MinBy[T any, K Number](s Seq[T], key func(T) K) (g.Option[T], error) {
	return extremum(s, key, func(a, b K) bool { return a < b })
}

// MaxBy returns the element with the largest key. Ties keep the earliest element.
func MaxBy[T any, K Number](s Seq[T], key func(T) K) (g.Option[T], error) {
	return extremum(s, key, func(a, b K) bool { return a > b })
}

func extremum[T any, K Number](s Seq[T], key func(T) K, better func(a, b K) bool) (g.Option[T], error) {
	best := g.None[T]()
	var bestKey K
	for v, err := range s.items() {
		if err != nil {
			return g.None[T](), err
		}
		k := key(v)
		if !best.Ok || better(k, bestKey) {
			best, bestKey = g.Some(v), k
		}
	}
	return best, nil
}

package topk

import "cmp"

// NewBottom creates a selector that retains the k candidates with the lowest
// scores. It is New with the LowestWins policy fixed.
//
// Example:
//
//	sel, err := topk.NewBottom(4, func(p Point) float64 {
//	    return p.X*p.X + p.Y*p.Y // squared distance to origin
//	})
//	if err != nil {
//	    return err
//	}
//	for _, p := range points {
//	    sel.Offer(p)
//	}
//	nearest := sel.Results() // closest first
func NewBottom[T any, S cmp.Ordered](k int, scorer ScoreFunc[T, S], optFns ...Option) (*Selector[T, S], error) {
	return New(k, scorer, LowestWins[S], optFns...)
}

// ComputeBottom selects the k lowest-scoring candidates from the slice in
// one shot. The result is sorted best to worst and identical to offering
// every candidate in order to a NewBottom selector and collecting Results.
func ComputeBottom[T any, S cmp.Ordered](k int, candidates []T, scorer ScoreFunc[T, S], optFns ...func(o *ComputeOptions)) ([]T, error) {
	return compute(k, candidates, scorer, LowestWins[S], optFns)
}

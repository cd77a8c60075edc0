package topk

import "cmp"

// NewTop creates a selector that retains the k candidates with the highest
// scores. It is New with the HighestWins policy fixed.
//
// Example:
//
//	sel, err := topk.NewTop(3, func(p Player) int { return p.Points })
//	if err != nil {
//	    return err
//	}
//	for _, p := range players {
//	    sel.Offer(p)
//	}
//	best := sel.Results() // highest points first
func NewTop[T any, S cmp.Ordered](k int, scorer ScoreFunc[T, S], optFns ...Option) (*Selector[T, S], error) {
	return New(k, scorer, HighestWins[S], optFns...)
}

// ComputeTop selects the k highest-scoring candidates from the slice in one
// shot. The result is sorted best to worst and identical to offering every
// candidate in order to a NewTop selector and collecting Results.
func ComputeTop[T any, S cmp.Ordered](k int, candidates []T, scorer ScoreFunc[T, S], optFns ...func(o *ComputeOptions)) ([]T, error) {
	return compute(k, candidates, scorer, HighestWins[S], optFns)
}

package topk

import "cmp"

// ScoreFunc computes the score of a candidate. It is called once per offered
// candidate, before any selection state changes, so a panicking scorer leaves
// the selector untouched.
type ScoreFunc[T, S any] func(candidate T) S

// BetterFunc reports whether score a beats score b. It defines the direction
// of the selection: the retained set is always the k best scores seen so far
// under this relation.
//
// The relation must be a strict ordering that is consistent across calls.
// When neither score beats the other the two are tied; retention and output
// order among ties is arbitrary. Callers that need deterministic ties can
// fold a secondary key into the score type and compare it here.
type BetterFunc[S any] func(a, b S) bool

// HighestWins is the BetterFunc for selecting the largest scores.
func HighestWins[S cmp.Ordered](a, b S) bool { return a > b }

// LowestWins is the BetterFunc for selecting the smallest scores.
func LowestWins[S cmp.Ordered](a, b S) bool { return a < b }

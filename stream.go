package topk

import "iter"

// Stream returns an iterator over the retained candidates and their scores,
// ordered best to worst. The selection is not consumed; a snapshot is taken
// when iteration begins, so offers made while iterating do not affect it.
// The iterator supports early termination by breaking from the loop.
//
// Example:
//
//	for candidate, score := range sel.Stream() {
//	    if score < threshold {
//	        break // Early termination
//	    }
//	    process(candidate, score)
//	}
func (s *Selector[T, S]) Stream() iter.Seq2[T, S] {
	return func(yield func(T, S) bool) {
		for _, e := range s.Entries() {
			if !yield(e.Candidate, e.Score) {
				return
			}
		}
	}
}

package topk

// Merge folds the retained entries of the given selectors into s without
// re-scoring: entries travel with the scores they were admitted under. The
// sources are left intact. It returns the number of merged entries accepted
// into s; an accepted entry may still be displaced by a later one in the
// same merge.
//
// All selectors involved must use the same policy; merging selectors with
// different orderings leaves the selection undefined. Feeding disjoint
// shares of one candidate stream to separate selectors and merging them
// yields the same retained set as one selector seeing the whole stream,
// up to ties.
func (s *Selector[T, S]) Merge(others ...*Selector[T, S]) int {
	var offered, accepted int

	for _, other := range others {
		if other == nil || other == s {
			continue
		}
		for _, item := range other.heap.Items() {
			offered++
			if s.heap.PushItemBounded(item, s.k) {
				accepted++
			}
		}
	}

	s.metrics.RecordMerge(offered, accepted)
	s.logger.LogMerge(len(others), accepted)

	return accepted
}

package topk

import (
	"github.com/hupe1980/topk/internal/queue"
)

// Selector retains the k best candidates offered to it, never holding more
// than k entries at a time. Candidates stream through Offer one at a time;
// the retained set is always the k best seen so far under the configured
// policy, with ties broken arbitrarily.
//
// Offering n candidates costs O(n log k) time and O(k) space, independent of
// n. A Selector is reusable for its whole lifetime: draining or resetting it
// restarts accumulation from empty with the same configuration.
//
// A Selector is not safe for concurrent use. For parallel workloads, feed
// independent selectors and combine them with Merge, or use the Parallelism
// option of ComputeTop/ComputeBottom.
type Selector[T, S any] struct {
	k       int
	scorer  ScoreFunc[T, S]
	better  BetterFunc[S]
	heap    *queue.Heap[T, S]
	metrics MetricsCollector
	logger  *Logger
}

// Result pairs a retained candidate with the score that earned its place.
type Result[T, S any] struct {
	Candidate T
	Score     S
}

// New creates a selector that retains the k best-scoring candidates under
// the given policy. k may be zero; such a selector rejects every offer and
// always yields empty results. Negative k returns ErrNegativeCapacity.
//
// Most callers want NewTop or NewBottom, which fix the policy for ordered
// score types. New is the general form for custom orderings.
func New[T, S any](k int, scorer ScoreFunc[T, S], better BetterFunc[S], optFns ...Option) (*Selector[T, S], error) {
	if k < 0 {
		return nil, ErrNegativeCapacity
	}
	if scorer == nil {
		return nil, ErrNilScorer
	}
	if better == nil {
		return nil, ErrNilPolicy
	}

	o := applyOptions(optFns)

	// The heap keeps the worst retained score at the top, so ordering is the
	// inverse of the policy.
	worse := func(a, b S) bool { return better(b, a) }

	return &Selector[T, S]{
		k:       k,
		scorer:  scorer,
		better:  better,
		heap:    queue.New[T](k, worse),
		metrics: o.metricsCollector,
		logger:  o.logger,
	}, nil
}

// Offer submits a candidate for selection and reports whether it was
// retained. While the selection is below capacity every candidate is
// retained; once full, a candidate is retained only if its score strictly
// beats the worst retained score, displacing that entry.
//
// The score is computed before any state changes, so a panicking scorer
// propagates with the selection unchanged. A selector with k == 0 rejects
// without scoring.
func (s *Selector[T, S]) Offer(candidate T) bool {
	if s.k == 0 {
		s.metrics.RecordOffer(false, false)
		return false
	}

	score := s.scorer(candidate)

	full := s.heap.Len() == s.k
	accepted := s.heap.PushItemBounded(queue.Item[T, S]{Candidate: candidate, Score: score}, s.k)
	s.metrics.RecordOffer(accepted, accepted && full)

	return accepted
}

// ResultOptions configures results extraction.
type ResultOptions struct {
	// Sorted orders the output best to worst under the policy. When false
	// the output follows internal heap order, which is unspecified.
	Sorted bool

	// Drain consumes the selection: after a drained extraction the selector
	// is empty and accumulation starts over. Without Drain the selector is
	// left untouched and repeated extractions yield the same entries.
	Drain bool
}

// Results returns the retained candidates, by default sorted best to worst
// and without consuming the selection.
//
// Example:
//
//	top3 := sel.Results()                                    // sorted snapshot
//	rest := sel.Results(func(o *topk.ResultOptions) {
//	    o.Sorted = false
//	    o.Drain = true                                       // consume
//	})
func (s *Selector[T, S]) Results(optFns ...func(o *ResultOptions)) []T {
	entries, sorted, drained := s.extract(optFns)

	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.Candidate
	}

	s.metrics.RecordResults(len(out), drained)
	s.logger.LogResults(s.k, len(out), sorted, drained)

	return out
}

// Entries returns the retained candidates together with their scores. It
// accepts the same options as Results.
func (s *Selector[T, S]) Entries(optFns ...func(o *ResultOptions)) []Result[T, S] {
	entries, sorted, drained := s.extract(optFns)

	out := make([]Result[T, S], len(entries))
	for i, e := range entries {
		out[i] = Result[T, S]{Candidate: e.Candidate, Score: e.Score}
	}

	s.metrics.RecordResults(len(out), drained)
	s.logger.LogResults(s.k, len(out), sorted, drained)

	return out
}

func (s *Selector[T, S]) extract(optFns []func(o *ResultOptions)) ([]queue.Item[T, S], bool, bool) {
	opts := ResultOptions{
		Sorted: true,
		Drain:  false,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	h := s.heap
	if !opts.Drain {
		h = s.heap.Clone()
	}

	out := make([]queue.Item[T, S], h.Len())
	if opts.Sorted {
		// Pop worst first and fill back to front so the best ends up first.
		for i := len(out) - 1; i >= 0; i-- {
			out[i], _ = h.PopItem()
		}
	} else {
		for i := range out {
			out[i], _ = h.PopItem()
		}
	}

	return out, opts.Sorted, opts.Drain
}

// Len returns the number of currently retained candidates.
func (s *Selector[T, S]) Len() int {
	return s.heap.Len()
}

// Cap returns the selection capacity k.
func (s *Selector[T, S]) Cap() int {
	return s.k
}

// Reset discards all retained candidates while keeping the configuration.
func (s *Selector[T, S]) Reset() {
	discarded := s.heap.Len()
	s.heap.Reset()
	s.logger.LogReset(discarded)
}

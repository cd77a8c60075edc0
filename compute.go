package topk

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// ComputeOptions configures the one-shot batch selections ComputeTop and
// ComputeBottom.
type ComputeOptions struct {
	// Parallelism sets the number of goroutines scoring candidates. Values
	// below 2 select sequentially. The scorer must be safe for concurrent
	// use when parallelism is enabled.
	Parallelism int

	// Logger configures structured logging for the computation.
	// Nil disables logging.
	Logger *Logger

	// Metrics configures a metrics collector for the computation.
	// Nil disables metrics collection.
	Metrics MetricsCollector
}

func compute[T, S any](k int, candidates []T, scorer ScoreFunc[T, S], better BetterFunc[S], optFns []func(o *ComputeOptions)) ([]T, error) {
	opts := ComputeOptions{
		Parallelism: 1,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	sel, err := New(k, scorer, better, WithLogger(opts.Logger), WithMetricsCollector(opts.Metrics))
	if err != nil {
		return nil, err
	}

	start := time.Now()

	if opts.Parallelism > 1 && len(candidates) > 1 {
		if err := computeStriped(sel, candidates, opts.Parallelism); err != nil {
			return nil, err
		}
	} else {
		for _, c := range candidates {
			sel.Offer(c)
		}
	}

	sel.metrics.RecordCompute(len(candidates), time.Since(start))
	sel.logger.LogCompute(k, len(candidates), max(opts.Parallelism, 1))

	return sel.Results(), nil
}

// computeStriped fans the candidates out over independent per-goroutine
// selectors and merges the stripe winners into sel. Selection is
// order-insensitive up to ties, so striping preserves the result set.
func computeStriped[T, S any](sel *Selector[T, S], candidates []T, parallelism int) error {
	stripes := make([]*Selector[T, S], parallelism)
	for i := range stripes {
		stripe, err := New(sel.k, sel.scorer, sel.better)
		if err != nil {
			return err
		}
		stripes[i] = stripe
	}

	var g errgroup.Group
	for i, stripe := range stripes {
		g.Go(func() error {
			for j := i; j < len(candidates); j += parallelism {
				stripe.Offer(candidates[j])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sel.Merge(stripes...)
	return nil
}

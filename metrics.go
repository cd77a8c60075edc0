package topk

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    offerCounter    prometheus.Counter
//	    computeDuration prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordOffer(accepted, evicted bool) {
//	    p.offerCounter.Inc()
//	    // ... record acceptance, eviction, etc.
//	}
type MetricsCollector interface {
	// RecordOffer is called after each offer. accepted reports whether the
	// candidate was retained, evicted whether retaining it displaced a
	// previously retained candidate.
	RecordOffer(accepted, evicted bool)

	// RecordResults is called after each results extraction.
	// count is the number of entries returned, drained reports whether the
	// selection was consumed.
	RecordResults(count int, drained bool)

	// RecordMerge is called after each merge operation.
	// offered is the number of entries pushed, accepted the number retained.
	RecordMerge(offered, accepted int)

	// RecordCompute is called after each one-shot batch selection.
	// offered is the number of candidates scanned, duration is the total
	// time taken.
	RecordCompute(offered int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOffer(bool, bool)           {}
func (NoopMetricsCollector) RecordResults(int, bool)          {}
func (NoopMetricsCollector) RecordMerge(int, int)             {}
func (NoopMetricsCollector) RecordCompute(int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	OfferCount        atomic.Int64
	OfferAccepted     atomic.Int64
	Evictions         atomic.Int64
	ResultsCount      atomic.Int64
	ResultsEntries    atomic.Int64
	ResultsDrained    atomic.Int64
	MergeCount        atomic.Int64
	MergeOffered      atomic.Int64
	MergeAccepted     atomic.Int64
	ComputeCount      atomic.Int64
	ComputeItems      atomic.Int64
	ComputeTotalNanos atomic.Int64
}

// RecordOffer implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOffer(accepted, evicted bool) {
	b.OfferCount.Add(1)
	if accepted {
		b.OfferAccepted.Add(1)
	}
	if evicted {
		b.Evictions.Add(1)
	}
}

// RecordResults implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResults(count int, drained bool) {
	b.ResultsCount.Add(1)
	b.ResultsEntries.Add(int64(count))
	if drained {
		b.ResultsDrained.Add(1)
	}
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(offered, accepted int) {
	b.MergeCount.Add(1)
	b.MergeOffered.Add(int64(offered))
	b.MergeAccepted.Add(int64(accepted))
}

// RecordCompute implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompute(offered int, duration time.Duration) {
	b.ComputeCount.Add(1)
	b.ComputeItems.Add(int64(offered))
	b.ComputeTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		OfferCount:      b.OfferCount.Load(),
		OfferAccepted:   b.OfferAccepted.Load(),
		Evictions:       b.Evictions.Load(),
		ResultsCount:    b.ResultsCount.Load(),
		ResultsEntries:  b.ResultsEntries.Load(),
		ResultsDrained:  b.ResultsDrained.Load(),
		MergeCount:      b.MergeCount.Load(),
		MergeOffered:    b.MergeOffered.Load(),
		MergeAccepted:   b.MergeAccepted.Load(),
		ComputeCount:    b.ComputeCount.Load(),
		ComputeItems:    b.ComputeItems.Load(),
		ComputeAvgNanos: b.getAvgComputeNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgComputeNanos() int64 {
	count := b.ComputeCount.Load()
	if count == 0 {
		return 0
	}
	return b.ComputeTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	OfferCount      int64
	OfferAccepted   int64
	Evictions       int64
	ResultsCount    int64
	ResultsEntries  int64
	ResultsDrained  int64
	MergeCount      int64
	MergeOffered    int64
	MergeAccepted   int64
	ComputeCount    int64
	ComputeItems    int64
	ComputeAvgNanos int64
}

// Package topk provides bounded streaming selection of the k best or k
// worst candidates from a sequence of arbitrary values.
//
// Candidates are scored by a caller-supplied function and stream through a
// Selector one at a time. The selector never retains more than k entries:
// processing n candidates costs O(n log k) time and O(k) space, regardless
// of how large n grows. Typical uses are k-nearest-neighbor queries, top-N
// ranking and streaming leaderboards.
//
// # Quick Start
//
// Keep the three highest-scoring players of a stream:
//
//	sel, err := topk.NewTop(3, func(p Player) int { return p.Points })
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range players {
//	    sel.Offer(p)
//	}
//	for _, p := range sel.Results() { // best first
//	    fmt.Println(p.Name, p.Points)
//	}
//
// One-shot selection over a slice:
//
//	dist := score.SquaredL2(query)
//	nearest, err := topk.ComputeBottom(4, points, func(p Point) float32 {
//	    return dist(p.Vector)
//	})
//
// Streaming iteration with early termination:
//
//	for candidate, score := range sel.Stream() {
//	    if score < threshold {
//	        break
//	    }
//	    process(candidate, score)
//	}
//
// # Policies
//
// NewTop and NewBottom cover ordered score types. New accepts any score
// type together with a BetterFunc that defines which of two scores wins,
// so composite orderings (score plus tie-break key, custom structs) plug in
// without adapters.
//
// # Concurrency
//
// A single Selector is not safe for concurrent use. For parallel workloads
// feed independent selectors and combine them with Merge, or pass a
// Parallelism option to ComputeTop/ComputeBottom, which stripes the input
// across goroutines and merges the per-stripe winners.
//
// # Key Features
//
//   - Generic over candidate and score types
//   - Strict O(k) retention with replace-at-top eviction
//   - Sorted or unsorted extraction, consuming or snapshotting
//   - Scores returned alongside candidates via Entries and Stream
//   - Merge for shard-style fan-in without re-scoring
//   - Optional structured logging (slog) and pluggable metrics
package topk

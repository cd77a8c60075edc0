package queue

import (
	"math/rand"
	"testing"
	"time"
)

func TestHeap(t *testing.T) {
	// worse = smaller score, i.e. the heap keeps the largest scores and the
	// minimum sits at the top as the eviction candidate.
	worse := func(a, b int) bool { return a < b }

	t.Run("PushPop", func(t *testing.T) {
		h := New[string](4, worse)

		h.PushItem(Item[string, int]{Candidate: "a", Score: 10})
		h.PushItem(Item[string, int]{Candidate: "b", Score: 5})
		h.PushItem(Item[string, int]{Candidate: "c", Score: 20})

		if h.Len() != 3 {
			t.Errorf("expected len 3, got %d", h.Len())
		}

		top, ok := h.TopItem()
		if !ok || top.Score != 5 {
			t.Errorf("expected top 5, got %v", top.Score)
		}

		// Pop order: worst first, so 5, 10, 20
		item, ok := h.PopItem()
		if !ok || item.Score != 5 {
			t.Errorf("pop 1: expected 5, got %v", item.Score)
		}

		item, ok = h.PopItem()
		if !ok || item.Score != 10 {
			t.Errorf("pop 2: expected 10, got %v", item.Score)
		}

		item, _ = h.PopItem()
		if item.Score != 20 {
			t.Errorf("pop 3: expected 20, got %v", item.Score)
		}
	})

	t.Run("PushItemBounded", func(t *testing.T) {
		h := New[string](3, worse)
		capacity := 3

		// Fill up
		if !h.PushItemBounded(Item[string, int]{Candidate: "a", Score: 10}, capacity) {
			t.Error("expected accept while under capacity")
		}
		h.PushItemBounded(Item[string, int]{Candidate: "b", Score: 20}, capacity)
		h.PushItemBounded(Item[string, int]{Candidate: "c", Score: 30}, capacity)

		top, _ := h.TopItem()
		if top.Score != 10 {
			t.Errorf("expected worst 10, got %v", top.Score)
		}

		// Worse than the current worst: skipped
		if h.PushItemBounded(Item[string, int]{Candidate: "d", Score: 5}, capacity) {
			t.Error("expected reject of 5")
		}

		// Equal to the current worst: not strictly better, skipped
		if h.PushItemBounded(Item[string, int]{Candidate: "e", Score: 10}, capacity) {
			t.Error("expected reject of tie with worst")
		}

		// Better: evicts the top
		if !h.PushItemBounded(Item[string, int]{Candidate: "f", Score: 40}, capacity) {
			t.Error("expected accept of 40")
		}

		if h.Len() != 3 {
			t.Errorf("expected len 3, got %d", h.Len())
		}

		top, _ = h.TopItem()
		if top.Score != 20 {
			t.Errorf("expected worst 20 after eviction, got %v", top.Score)
		}
	})

	t.Run("ZeroCapacity", func(t *testing.T) {
		h := New[string](0, worse)
		if h.PushItemBounded(Item[string, int]{Candidate: "a", Score: 1}, 0) {
			t.Error("expected reject at zero capacity")
		}
		if h.Len() != 0 {
			t.Errorf("expected len 0, got %d", h.Len())
		}
	})

	t.Run("Clone", func(t *testing.T) {
		h := New[string](3, worse)
		h.PushItem(Item[string, int]{Candidate: "a", Score: 1})
		h.PushItem(Item[string, int]{Candidate: "b", Score: 2})

		cp := h.Clone()
		h.PopItem()
		h.PopItem()

		if h.Len() != 0 {
			t.Errorf("expected drained original, got len %d", h.Len())
		}
		if cp.Len() != 2 {
			t.Errorf("expected clone len 2, got %d", cp.Len())
		}
		item, _ := cp.PopItem()
		if item.Score != 1 {
			t.Errorf("expected clone pop 1, got %v", item.Score)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		h := New[string](2, worse)
		h.PushItem(Item[string, int]{Candidate: "a", Score: 1})
		h.Reset()
		if h.Len() != 0 {
			t.Error("expected 0 after reset")
		}

		// Reuse after reset
		h.PushItem(Item[string, int]{Candidate: "b", Score: 2})
		top, ok := h.TopItem()
		if !ok || top.Candidate != "b" {
			t.Errorf("expected b after reuse, got %v", top.Candidate)
		}
	})

	t.Run("Stress", func(t *testing.T) {
		h := New[int](0, func(a, b float32) bool { return a < b })
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))

		for i := 0; i < 1000; i++ {
			h.PushItem(Item[int, float32]{Candidate: i, Score: rng.Float32()})
		}

		// Pop all and verify worst-first order
		var last float32 = -1.0
		for h.Len() > 0 {
			item, _ := h.PopItem()
			if item.Score < last {
				t.Fatalf("heap invariant violated: %v < %v", item.Score, last)
			}
			last = item.Score
		}
	})

	t.Run("BoundedStress", func(t *testing.T) {
		h := New[int](16, func(a, b float32) bool { return a < b })
		rng := rand.New(rand.NewSource(42))

		scores := make([]float32, 500)
		for i := range scores {
			scores[i] = rng.Float32()
			h.PushItemBounded(Item[int, float32]{Candidate: i, Score: scores[i]}, 16)
		}

		if h.Len() != 16 {
			t.Fatalf("expected len 16, got %d", h.Len())
		}

		// The retained worst must beat (or tie) every rejected score.
		worst, _ := h.TopItem()
		better := 0
		for _, s := range scores {
			if s > worst.Score {
				better++
			}
		}
		if better > 15 {
			t.Errorf("worst retained score %v is beaten by %d offered scores", worst.Score, better)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		h := New[string](0, worse)
		if _, ok := h.TopItem(); ok {
			t.Error("TopItem on empty should return false")
		}
		if _, ok := h.PopItem(); ok {
			t.Error("PopItem on empty should return false")
		}
	})
}

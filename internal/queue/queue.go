// Package queue implements the bounded selection heap backing selectors.
package queue

// Item pairs a candidate with the score assigned to it.
type Item[T, S any] struct {
	Candidate T
	Score     S
}

// Heap is a binary heap of scored items ordered worst first, so the top
// element is always the eviction candidate. It is value-based and does NOT
// implement container/heap to avoid interface overhead on the offer path.
type Heap[T, S any] struct {
	worse func(a, b S) bool
	items []Item[T, S]
}

// New creates an empty heap with the given starting capacity. The worse
// function reports whether score a ranks behind score b.
func New[T, S any](capacity int, worse func(a, b S) bool) *Heap[T, S] {
	if capacity < 0 {
		capacity = 0
	}
	return &Heap[T, S]{
		worse: worse,
		items: make([]Item[T, S], 0, capacity),
	}
}

// Len returns the number of retained items.
func (h *Heap[T, S]) Len() int { return len(h.items) }

// Items returns the underlying slice in heap order.
func (h *Heap[T, S]) Items() []Item[T, S] { return h.items }

// Reset clears the heap for reuse, releasing candidate references held in
// the backing array.
func (h *Heap[T, S]) Reset() {
	clear(h.items)
	h.items = h.items[:0]
}

// Clone returns an independent copy sharing no state with the receiver.
func (h *Heap[T, S]) Clone() *Heap[T, S] {
	cp := &Heap[T, S]{
		worse: h.worse,
		items: make([]Item[T, S], len(h.items)),
	}
	copy(cp.items, h.items)
	return cp
}

// TopItem returns the worst retained item without removing it.
func (h *Heap[T, S]) TopItem() (Item[T, S], bool) {
	if len(h.items) == 0 {
		return Item[T, S]{}, false
	}
	return h.items[0], true
}

// PushItem inserts an item while maintaining the heap invariant.
func (h *Heap[T, S]) PushItem(item Item[T, S]) {
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
}

// PushItemBounded inserts an item into a heap bounded at capacity.
// If the heap is full the item replaces the top only when it is strictly
// better; otherwise it is skipped. It reports whether the item was retained.
func (h *Heap[T, S]) PushItemBounded(item Item[T, S], capacity int) bool {
	if capacity <= 0 {
		return false
	}
	if len(h.items) < capacity {
		h.PushItem(item)
		return true
	}
	if h.worse(h.items[0].Score, item.Score) {
		h.items[0] = item
		h.siftDown(0)
		return true
	}
	return false
}

// PopItem removes and returns the worst retained item.
func (h *Heap[T, S]) PopItem() (Item[T, S], bool) {
	n := len(h.items)
	if n == 0 {
		return Item[T, S]{}, false
	}
	root := h.items[0]
	last := h.items[n-1]
	h.items[n-1] = Item[T, S]{}
	h.items = h.items[:n-1]
	if n-1 > 0 {
		h.items[0] = last
		h.siftDown(0)
	}
	return root, true
}

func (h *Heap[T, S]) less(i, j int) bool {
	return h.worse(h.items[i].Score, h.items[j].Score)
}

func (h *Heap[T, S]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(i, p) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *Heap[T, S]) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		child := l
		if r := l + 1; r < n && h.less(r, l) {
			child = r
		}
		if !h.less(child, i) {
			return
		}
		h.items[i], h.items[child] = h.items[child], h.items[i]
		i = child
	}
}

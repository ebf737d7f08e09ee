package clipper

import "container/heap"

// Scanbeam list: a max-heap of distinct Y values the sweep still has to
// visit (spec 4.2, 9). Vatti's original description keeps a sorted array;
// container/heap gives the same amortized insert cost with less code, at
// the price of popping in descending order, which is what the sweep wants
// anyway (it processes the highest untouched Y first).

type scanbeamHeap []int64

func (h scanbeamHeap) Len() int            { return len(h) }
func (h scanbeamHeap) Less(i, j int) bool  { return h[i] > h[j] } // max-heap
func (h scanbeamHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *scanbeamHeap) Push(x interface{}) { *h = append(*h, x.(int64)) }
func (h *scanbeamHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// scanbeamList wraps scanbeamHeap with duplicate suppression: inserting a
// Y already present is a no-op, so the sweep never processes the same
// height twice.
type scanbeamList struct {
	h      scanbeamHeap
	seen   map[int64]bool
}

func newScanbeamList() *scanbeamList {
	return &scanbeamList{seen: make(map[int64]bool)}
}

func (s *scanbeamList) insert(y int64) {
	if s.seen[y] {
		return
	}
	s.seen[y] = true
	heap.Push(&s.h, y)
}

func (s *scanbeamList) empty() bool { return s.h.Len() == 0 }

// pop removes and returns the highest remaining Y.
func (s *scanbeamList) pop() int64 {
	y := heap.Pop(&s.h).(int64)
	delete(s.seen, y)
	return y
}

package edgeheap

import (
	"container/heap"

	"github.com/katalvlaran/junctionforest/pairwise"
)

// Less reports whether e sorts before f: smaller distance first, then
// smaller A, then smaller B.
func Less(e, f pairwise.Edge) bool {
	if c := e.Dist.Cmp(f.Dist); c != 0 {
		return c < 0
	}
	if e.A != f.A {
		return e.A < f.A
	}

	return e.B < f.B
}

// Queue is a min-priority-queue of edges.
type Queue struct {
	h edgePQ
}

// New builds a queue holding a copy of edges.
func New(edges []pairwise.Edge) *Queue {
	h := make(edgePQ, len(edges))
	copy(h, edges)
	heap.Init(&h)

	return &Queue{h: h}
}

// Len returns the number of edges still queued.
func (q *Queue) Len() int { return q.h.Len() }

// Peek returns the minimum edge without removing it.
func (q *Queue) Peek() (pairwise.Edge, bool) {
	if q.h.Len() == 0 {
		return pairwise.Edge{}, false
	}

	return q.h[0], true
}

// Pop removes and returns the minimum edge. ok is false once the queue is empty.
func (q *Queue) Pop() (e pairwise.Edge, ok bool) {
	if q.h.Len() == 0 {
		return pairwise.Edge{}, false
	}

	return heap.Pop(&q.h).(pairwise.Edge), true
}

// edgePQ implements heap.Interface over edge values.
type edgePQ []pairwise.Edge

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return Less(pq[i], pq[j]) }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(pairwise.Edge)) }

// Pop is called by heap.Pop; the minimum has already been swapped to the end.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}

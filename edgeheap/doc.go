// Package edgeheap provides the Edge Priority Queue: a min-heap of
// pairwise.Edge values ordered by ascending squared distance.
//
// Ties on distance are broken by A, then by B, both ascending. Because the
// pairwise index never produces two edges with the same (A, B), the order is
// total and repeated runs over the same input pop edges in the same sequence.
//
// The queue is loaded once with New (O(E) heapify) and then drained with Pop
// (O(log E) each). It is owned by a single algorithm run and never shared.
package edgeheap

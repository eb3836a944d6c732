// Package pairwise builds the Pairwise Distance Index: one Edge for every
// unordered pair of distinct points in a space.PointSet.
//
// Every pair (a, b) is visited once with a < b, so the index never holds both
// (a, b) and (b, a). The result is a complete graph on n vertices with
// n·(n−1)/2 edges, emitted in (A, B) lexicographic order.
//
// Cost is O(n²) time and memory. That is fine for puzzle-scale inputs (low
// thousands of points at most) and is the scaling limit of the whole engine.
package pairwise

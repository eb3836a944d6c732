// Package junction runs the two distance-ordered merging algorithms of
// junctionforest over a space.PointSet: the Cluster Builder and the Spanning
// Connector. Both consume the complete pairwise graph (package pairwise) in
// ascending distance order (package edgeheap) and track connectivity with a
// fresh disjoint-set forest (package dsu) per call.
//
// What & Why
//
//   - Cluster Builder: "wire up the n closest pairs, then look at the groups".
//     Exactly budget edges are popped and every one of them is joined, even when
//     its endpoints are already connected. A redundant edge is a no-op join, but
//     it still spends one unit of budget. The three largest resulting sets are
//     multiplied together.
//
//   - Spanning Connector: Kruskal's minimum spanning tree with an early exit.
//     Edges whose endpoints share a root are discarded (cycle avoidance); the
//     others are joined. The run stops at the (n−1)-th successful join, the one
//     that makes the whole point set a single component, and reports that
//     closing edge rather than the tree itself.
//
// Algorithms Provided
//
//   - Cluster(ps, budget, opts...) (uint64, error)
//     Product of the three largest set sizes after budget merges.
//
//   - Partition(ps, budget, opts...) ([][]int, error)
//     The full partition after budget merges, largest set first.
//
//   - Connect(ps, opts...) (a, b int, err error)
//     Indices of the closing edge, a < b.
//
//   - ClosingProduct(ps, opts...) (uint64, error)
//     X coordinate of a times X coordinate of b for the closing edge.
//
//   - TopProduct(sets) and XProduct(ps, a, b) expose the two reductions on their
//     own, for callers that already hold a partition or a closing edge.
//
// Determinism
//
//	Edges are ordered by distance, then by the smaller index, then by the larger
//	one. Set-size ties are broken by the smallest member. Identical input always
//	produces identical output.
//
// Error Conditions
//
//	Caller contract violations are reported as sentinel errors:
//
//	- ErrNegativeBudget  : budget < 0.
//	- ErrBudgetExceeded  : budget > n·(n−1)/2, more merges than edges.
//	- ErrTooFewClusters  : fewer than three sets remain for Cluster.
//	- ErrTooFewPoints    : fewer than two points for Connect.
//	- ErrProductOverflow : ClosingProduct does not fit in a uint64.
//
//	Running out of edges before the Spanning Connector closes the tree cannot
//	happen on a complete graph; it panics as an internal invariant violation.
//
// Complexity
//
//	Both algorithms are O(n² log n) time and O(n²) memory, dominated by the
//	n·(n−1)/2 edges of the complete graph.
package junction

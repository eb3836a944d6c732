// Package dsu implements a disjoint-set union (union-find) over the dense index
// range [0, size).
//
// What & Why
//
//   - Every element starts as its own singleton set (parent[i] = i, rank[i] = 0).
//   - Join merges two sets by rank: the root of the lower-rank tree is attached
//     under the root of the higher-rank tree. On a rank tie the root of y goes
//     under the root of x and x's root gains one rank. The tie direction is fixed
//     so that the surviving root is deterministic.
//   - FindRoot follows parent links until it reaches a self-parented index.
//     Paths are not compressed unless WithPathCompression is given; union by
//     rank alone keeps every path O(log n). Compression never changes which
//     index is a root, so connectivity and BuildSets are identical either way.
//
// Rank is a height bound used only to pick a merge direction. It is not a set
// size; use BuildSets or Sets for cardinalities.
//
// Complexity
//
//   - New:       O(n)
//   - FindRoot:  O(log n) without compression, amortized α(n) with it.
//   - Join:      two FindRoot calls + O(1).
//   - BuildSets: O(n log n)
package dsu

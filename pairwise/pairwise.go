package pairwise

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/junctionforest/space"
)

// Edge is an unordered pair of distinct point indices with its precomputed
// squared distance. A is always strictly less than B.
type Edge struct {
	A    int
	B    int
	Dist space.Dist
}

// String renders e as "A-B (dist)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d (%s)", e.A, e.B, e.Dist)
}

// Count returns the number of unordered pairs among n points, n choose 2.
// It returns 0 for n < 2.
func Count(n int) int {
	if n < 2 {
		return 0
	}

	return combin.Binomial(n, 2)
}

// Build returns every edge of the complete graph over ps, in (A, B)
// lexicographic order. For fewer than two points it returns an empty,
// non-nil slice.
func Build(ps space.PointSet) []Edge {
	n := ps.Len()
	edges := make([]Edge, 0, Count(n))
	if n < 2 {
		return edges
	}

	gen := combin.NewCombinationGenerator(n, 2)
	pair := make([]int, 2)
	for gen.Next() {
		gen.Combination(pair) // pair[0] < pair[1]
		edges = append(edges, Edge{
			A:    pair[0],
			B:    pair[1],
			Dist: space.SquaredDistance(ps.At(pair[0]), ps.At(pair[1])),
		})
	}

	return edges
}

package junction

import (
	"fmt"

	"lukechampine.com/uint128"

	"github.com/katalvlaran/junctionforest/edgeheap"
	"github.com/katalvlaran/junctionforest/pairwise"
	"github.com/katalvlaran/junctionforest/space"
)

// Connect runs Kruskal's algorithm over the complete graph of ps and returns
// the closing edge: the edge whose join first makes all points one component.
// The returned indices satisfy a < b.
//
// Error Conditions:
//   - ErrTooFewPoints : ps has fewer than two points.
//
// Steps:
//  1. Validate: at least two points.
//  2. Build all n·(n−1)/2 edges and heapify them by ascending distance.
//  3. Pop edges; skip those whose endpoints share a root, join the rest.
//  4. The (n−1)-th join closes the spanning tree; report that edge.
//
// Complexity: O(n² log n). Memory: O(n²).
func Connect(ps space.PointSet, opts ...Option) (a, b int, err error) {
	// 1. Validate.
	n := ps.Len()
	if n < 2 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}
	o := buildOptions(opts)

	// 2. Queue and a fresh forest.
	q := edgeheap.New(pairwise.Build(ps))
	d := o.newDSU(n)

	// 3. Kruskal, early exit.
	added := 0
	for q.Len() > 0 {
		e, _ := q.Pop()
		if d.FindRoot(e.A) == d.FindRoot(e.B) {
			// Would close a cycle.
			continue
		}
		d.Join(e.A, e.B)
		added++
		o.Logger.Debug("spanning join", "added", added, "a", e.A, "b", e.B, "dist", e.Dist)

		// 4. Tree complete.
		if added == n-1 {
			return e.A, e.B, nil
		}
	}

	// A complete graph on n >= 2 points always spans.
	panic(fmt.Sprintf("junction: edge queue exhausted after %d of %d joins", added, n-1))
}

// ClosingProduct returns X[a]·X[b] for the closing edge (a, b) found by Connect.
func ClosingProduct(ps space.PointSet, opts ...Option) (uint64, error) {
	a, b, err := Connect(ps, opts...)
	if err != nil {
		return 0, err
	}

	return XProduct(ps, a, b)
}

// XProduct returns the product of the X coordinates of points a and b.
func XProduct(ps space.PointSet, a, b int) (uint64, error) {
	xa, xb := ps.At(a).X, ps.At(b).X
	p := uint128.From64(xa).Mul64(xb)
	if p.Hi != 0 {
		return 0, fmt.Errorf("%w: %d * %d", ErrProductOverflow, xa, xb)
	}

	return p.Lo, nil
}

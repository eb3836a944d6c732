package junction

import (
	"fmt"

	"github.com/katalvlaran/junctionforest/dsu"
	"github.com/katalvlaran/junctionforest/edgeheap"
	"github.com/katalvlaran/junctionforest/pairwise"
	"github.com/katalvlaran/junctionforest/space"
)

// Cluster merges the budget closest pairs of ps and returns the product of
// the sizes of the three largest resulting sets.
//
// Error Conditions:
//   - ErrNegativeBudget : budget < 0.
//   - ErrBudgetExceeded : budget > pairwise.Count(ps.Len()).
//   - ErrTooFewClusters : fewer than three sets remain.
func Cluster(ps space.PointSet, budget int, opts ...Option) (uint64, error) {
	d, err := mergeClosest(ps, budget, buildOptions(opts))
	if err != nil {
		return 0, err
	}

	product, err := TopProduct(d.Sets())
	if err != nil {
		return 0, fmt.Errorf("%w after %d merges", err, budget)
	}

	return product, nil
}

// TopProduct multiplies the sizes of the three largest sets. sets must be
// ordered largest first, as returned by Partition.
func TopProduct(sets [][]int) (uint64, error) {
	if len(sets) < topClusters {
		return 0, fmt.Errorf("%w: %d", ErrTooFewClusters, len(sets))
	}
	product := uint64(1)
	for _, s := range sets[:topClusters] {
		product *= uint64(len(s))
	}

	return product, nil
}

// Partition merges the budget closest pairs of ps and returns every resulting
// set, largest first, equal sizes ordered by smallest member. Members within a
// set are in ascending index order.
func Partition(ps space.PointSet, budget int, opts ...Option) ([][]int, error) {
	d, err := mergeClosest(ps, budget, buildOptions(opts))
	if err != nil {
		return nil, err
	}

	return d.Sets(), nil
}

// mergeClosest pops exactly budget edges in ascending distance order and joins
// every one of them. A join between already connected points is a no-op but
// still counts against the budget.
//
// Steps:
//  1. Validate budget against the number of available edges.
//  2. Build the complete pairwise graph and heapify it.
//  3. Pop and join budget times.
func mergeClosest(ps space.PointSet, budget int, o Options) (*dsu.DSU, error) {
	// 1. Validate.
	if budget < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeBudget, budget)
	}
	n := ps.Len()
	if total := pairwise.Count(n); budget > total {
		return nil, fmt.Errorf("%w: budget %d, %d points give %d edges", ErrBudgetExceeded, budget, n, total)
	}

	// 2. Complete graph, ascending order.
	q := edgeheap.New(pairwise.Build(ps))
	d := o.newDSU(n)

	// 3. Unconditional joins.
	for step := 1; step <= budget; step++ {
		e, ok := q.Pop()
		if !ok {
			panic(fmt.Sprintf("junction: edge queue empty at step %d of %d", step, budget))
		}
		merged := d.Join(e.A, e.B)
		o.Logger.Debug("cluster join",
			"step", step, "a", e.A, "b", e.B, "dist", e.Dist, "merged", merged, "sets", d.Count())
	}

	return d, nil
}

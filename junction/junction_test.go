package junction_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/junctionforest/dsu"
	"github.com/katalvlaran/junctionforest/edgeheap"
	"github.com/katalvlaran/junctionforest/junction"
	"github.com/katalvlaran/junctionforest/pairwise"
	"github.com/katalvlaran/junctionforest/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadExample reads the 20-point fixture shared by the whole repo.
func loadExample(t testing.TB) space.PointSet {
	t.Helper()
	ps, err := space.ParseFile("../testdata/example.txt")
	require.NoError(t, err)
	require.Equal(t, 20, ps.Len())

	return ps
}

// line returns the three-point scenario (0,0,0), (0,0,1), (0,0,10).
// Squared distances: 0–1 = 1, 1–2 = 81, 0–2 = 100.
func line() space.PointSet {
	return space.PointSet{{Z: 0}, {Z: 1}, {Z: 10}}
}

// randomPoints builds n points with coordinates in [0, span) from a fixed seed.
func randomPoints(n, span int, seed int64) space.PointSet {
	r := rand.New(rand.NewSource(seed))
	ps := make(space.PointSet, n)
	for i := range ps {
		ps[i] = space.Point{X: uint64(r.Intn(span)), Y: uint64(r.Intn(span)), Z: uint64(r.Intn(span))}
	}

	return ps
}

// TestCluster_Example checks the documented fixture answer, repeatedly.
func TestCluster_Example(t *testing.T) {
	ps := loadExample(t)
	for i := 0; i < 5; i++ {
		got, err := junction.Cluster(ps, 10)
		require.NoError(t, err)
		assert.Equal(t, uint64(40), got)
	}
}

// TestCluster_RedundantEdgeSpendsBudget pins the budget policy: the fourth
// closest pair of the fixture (7–19) is already connected through 0, and it
// still consumes one of the ten merges. Skipping it would give 5·5·2 = 50.
func TestCluster_RedundantEdgeSpendsBudget(t *testing.T) {
	ps := loadExample(t)

	parts, err := junction.Partition(ps, 10)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{2, 8, 13, 17, 18},
		{0, 7, 14, 19},
		{9, 12},
		{11, 16},
		{1}, {3}, {4}, {5}, {6}, {10}, {15},
	}, parts)
}

func TestCluster_Budgets(t *testing.T) {
	ps := loadExample(t)
	cases := []struct {
		budget int
		want   uint64
	}{
		{0, 1},
		{1, 2},
		{5, 12},
		{20, 45},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("budget=%d", tc.budget), func(t *testing.T) {
			got, err := junction.Cluster(ps, tc.budget)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCluster_ZeroBudgetIsOne(t *testing.T) {
	for n := 3; n <= 6; n++ {
		got, err := junction.Cluster(randomPoints(n, 100, int64(n)), 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), got)
	}
}

func TestCluster_Errors(t *testing.T) {
	ps := loadExample(t)

	_, err := junction.Cluster(ps, -1)
	assert.ErrorIs(t, err, junction.ErrNegativeBudget)

	_, err = junction.Cluster(ps, pairwise.Count(ps.Len())+1)
	assert.ErrorIs(t, err, junction.ErrBudgetExceeded)

	// 24 merges leave only two sets on the fixture.
	_, err = junction.Cluster(ps, 24)
	assert.ErrorIs(t, err, junction.ErrTooFewClusters)

	// Three points, one merge: {0,1} and {2}.
	_, err = junction.Cluster(line(), 1)
	assert.ErrorIs(t, err, junction.ErrTooFewClusters)

	_, err = junction.Cluster(space.PointSet{{X: 1}}, 1)
	assert.ErrorIs(t, err, junction.ErrBudgetExceeded)
}

// TestPartition_FullBudget spends every edge and expects a single set.
func TestPartition_FullBudget(t *testing.T) {
	ps := loadExample(t)

	parts, err := junction.Partition(ps, pairwise.Count(ps.Len()))
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Len(t, parts[0], ps.Len())

	_, err = junction.Cluster(ps, pairwise.Count(ps.Len()))
	assert.ErrorIs(t, err, junction.ErrTooFewClusters)
}

func TestPartition_Line(t *testing.T) {
	parts, err := junction.Partition(line(), 1)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2}}, parts)
}

func TestConnect_Line(t *testing.T) {
	a, b, err := junction.Connect(line())
	require.NoError(t, err)
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestConnect_Example(t *testing.T) {
	ps := loadExample(t)

	a, b, err := junction.Connect(ps)
	require.NoError(t, err)
	assert.Equal(t, 10, a)
	assert.Equal(t, 12, b)

	product, err := junction.ClosingProduct(ps)
	require.NoError(t, err)
	assert.Equal(t, uint64(25272), product)
}

func TestConnect_TwoPoints(t *testing.T) {
	a, b, err := junction.Connect(space.PointSet{{X: 5}, {X: 9}})
	require.NoError(t, err)
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
}

func TestConnect_Errors(t *testing.T) {
	_, _, err := junction.Connect(nil)
	assert.ErrorIs(t, err, junction.ErrTooFewPoints)

	_, _, err = junction.Connect(space.PointSet{{X: 1, Y: 2, Z: 3}})
	assert.ErrorIs(t, err, junction.ErrTooFewPoints)

	_, err = junction.ClosingProduct(space.PointSet{})
	assert.ErrorIs(t, err, junction.ErrTooFewPoints)

	big := space.PointSet{{X: 1 << 40}, {X: 1<<40 + 1}}
	_, err = junction.ClosingProduct(big)
	assert.ErrorIs(t, err, junction.ErrProductOverflow)
}

// TestConnect_ClosingEdgeIsLastMerge replays the sorted edges with a separate
// forest: before the closing edge there are exactly two components, after it
// one, and it is the (n−1)-th edge that joined two different sets.
func TestConnect_ClosingEdgeIsLastMerge(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		ps := randomPoints(60, 1000, seed)
		a, b, err := junction.Connect(ps)
		require.NoError(t, err)

		q := edgeheap.New(pairwise.Build(ps))
		d := dsu.New(ps.Len())
		merges := 0
		for {
			e, ok := q.Pop()
			require.True(t, ok, "queue drained before closing edge")
			if e.A == a && e.B == b {
				require.Equal(t, 2, d.Count())
				require.True(t, d.Join(e.A, e.B))
				merges++
				break
			}
			if d.Join(e.A, e.B) {
				merges++
			}
		}
		assert.Equal(t, ps.Len()-1, merges)
		assert.Equal(t, 1, d.Count())
	}
}

// TestPathCompression_SameAnswers checks that the optional optimization does
// not change results.
func TestPathCompression_SameAnswers(t *testing.T) {
	ps := randomPoints(80, 50, 42)

	want, err := junction.Partition(ps, 100)
	require.NoError(t, err)
	got, err := junction.Partition(ps, 100, junction.WithPathCompression(true))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	a1, b1, err := junction.Connect(ps)
	require.NoError(t, err)
	a2, b2, err := junction.Connect(ps, junction.WithPathCompression(true))
	require.NoError(t, err)
	assert.Equal(t, [2]int{a1, b1}, [2]int{a2, b2})
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := junction.Cluster(loadExample(t), 10, junction.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 10, strings.Count(out, "cluster join"))
	assert.Equal(t, 1, strings.Count(out, "merged=false"))

	// A nil logger falls back to discarding.
	_, _, err = junction.Connect(line(), junction.WithLogger(nil))
	assert.NoError(t, err)
}

func TestDefaultOptions(t *testing.T) {
	o := junction.DefaultOptions()
	assert.NotNil(t, o.Logger)
	assert.False(t, o.PathCompression)
}

func TestTopProduct(t *testing.T) {
	got, err := junction.TopProduct([][]int{{0, 1, 2}, {3, 4}, {5, 6}, {7}})
	require.NoError(t, err)
	assert.Equal(t, uint64(12), got)

	_, err = junction.TopProduct([][]int{{0}, {1}})
	assert.ErrorIs(t, err, junction.ErrTooFewClusters)
}

func TestXProduct(t *testing.T) {
	ps := space.PointSet{{X: 216, Y: 146, Z: 977}, {X: 117, Y: 168, Z: 530}}
	got, err := junction.XProduct(ps, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(25272), got)
}

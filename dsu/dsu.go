package dsu

import "sort"

// Option configures a DSU at construction time.
type Option func(*DSU)

// WithPathCompression makes FindRoot repoint every visited index directly at
// its root. It is a pure speed-up: roots and connectivity are unchanged.
func WithPathCompression() Option {
	return func(d *DSU) { d.compress = true }
}

// DSU is a disjoint-set forest over the indices [0, Len()).
// It is not safe for concurrent use.
type DSU struct {
	parent   []int
	rank     []int
	sets     int
	compress bool
}

// New returns a DSU holding size singleton sets.
func New(size int, opts ...Option) *DSU {
	d := &DSU{
		parent: make([]int, size),
		rank:   make([]int, size),
		sets:   size,
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets.
func (d *DSU) Count() int { return d.sets }

// Rank returns the rank of x. Only meaningful for roots.
func (d *DSU) Rank(x int) int { return d.rank[x] }

// FindRoot returns the representative of the set containing x.
func (d *DSU) FindRoot(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	if d.compress {
		for x != root {
			next := d.parent[x]
			d.parent[x] = root
			x = next
		}
	}

	return root
}

// Connected reports whether x and y share a root.
func (d *DSU) Connected(x, y int) bool {
	return d.FindRoot(x) == d.FindRoot(y)
}

// Join merges the sets containing x and y and reports whether a merge happened.
// Joining two already connected indices is a no-op that returns false.
func (d *DSU) Join(x, y int) bool {
	rootX := d.FindRoot(x)
	rootY := d.FindRoot(y)
	if rootX == rootY {
		return false
	}

	switch {
	case d.rank[rootX] < d.rank[rootY]:
		d.parent[rootX] = rootY
	case d.rank[rootY] < d.rank[rootX]:
		d.parent[rootY] = rootX
	default:
		// Tie: y's root goes under x's root.
		d.parent[rootY] = rootX
		d.rank[rootX]++
	}
	d.sets--

	return true
}

// BuildSets returns the current partition keyed by root. Members of each set
// are listed in discovery order, which is ascending index order.
func (d *DSU) BuildSets() map[int][]int {
	sets := make(map[int][]int, d.sets)
	for i := range d.parent {
		root := d.FindRoot(i)
		sets[root] = append(sets[root], i)
	}

	return sets
}

// Sets returns the partition as a slice, largest set first. Sets of equal
// size are ordered by their smallest member, so the result is deterministic.
func (d *DSU) Sets() [][]int {
	byRoot := d.BuildSets()
	out := make([][]int, 0, len(byRoot))
	for _, members := range byRoot {
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}

		return out[i][0] < out[j][0]
	})

	return out
}

// Sizes returns the cardinality of every set, in the order of Sets.
func (d *DSU) Sizes() []int {
	sets := d.Sets()
	sizes := make([]int, len(sets))
	for i, s := range sets {
		sizes[i] = len(s)
	}

	return sizes
}

package junction

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/junctionforest/dsu"
)

// ErrNegativeBudget indicates a negative merge budget.
var ErrNegativeBudget = errors.New("junction: merge budget must be non-negative")

// ErrBudgetExceeded indicates a merge budget larger than the number of edges
// in the complete graph over the point set.
var ErrBudgetExceeded = errors.New("junction: merge budget exceeds available edges")

// ErrTooFewClusters indicates fewer than three sets remain after merging,
// so a three-cluster product cannot be formed.
var ErrTooFewClusters = errors.New("junction: fewer than three clusters remain")

// ErrTooFewPoints indicates that a spanning connection needs at least two points.
var ErrTooFewPoints = errors.New("junction: at least two points required")

// ErrProductOverflow indicates a coordinate product that does not fit in a uint64.
var ErrProductOverflow = errors.New("junction: product overflows uint64")

// topClusters is how many of the largest sets Cluster multiplies together.
const topClusters = 3

// Options configures a Cluster, Partition or Connect run.
//
// Fields:
//
//	Logger            receives a Debug record per merge; nil discards.
//	PathCompression   enables path compression in the disjoint-set forest.
type Options struct {
	Logger          *slog.Logger
	PathCompression bool
}

// Option mutates Options.
type Option func(*Options)

// WithLogger routes per-merge debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithPathCompression toggles path compression. Results are identical either way.
func WithPathCompression(on bool) Option {
	return func(o *Options) { o.PathCompression = on }
}

// DefaultOptions returns Options with a discarding logger and no path compression.
func DefaultOptions() Options {
	return Options{
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		PathCompression: false,
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = DefaultOptions().Logger
	}

	return o
}

func (o Options) newDSU(size int) *dsu.DSU {
	if o.PathCompression {
		return dsu.New(size, dsu.WithPathCompression())
	}

	return dsu.New(size)
}

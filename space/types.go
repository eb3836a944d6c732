package space

import (
	"errors"
	"fmt"
)

// MaxCoord is the largest accepted coordinate value.
// 3·(2^62)^2 = 3·2^124 < 2^128, so every squared distance fits in a Dist.
const MaxCoord uint64 = 1 << 62

var (
	// ErrMalformedLine indicates a line that is not of the form "x,y,z".
	ErrMalformedLine = errors.New("space: malformed point line")

	// ErrCoordRange indicates a coordinate above MaxCoord.
	ErrCoordRange = errors.New("space: coordinate out of range")
)

// Point is an immutable point with non-negative integer coordinates.
type Point struct {
	X uint64
	Y uint64
	Z uint64
}

// String renders p the same way Parse reads it.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// PointSet is an ordered, index-addressed collection of points.
// It is read-only once built; every other package refers to points by index.
type PointSet []Point

// Len returns the number of points in the set.
func (ps PointSet) Len() int { return len(ps) }

// At returns the point with index i. It panics if i is out of range.
func (ps PointSet) At(i int) Point { return ps[i] }

package space

import "lukechampine.com/uint128"

// Dist is an unsigned 128-bit squared distance. The zero value is 0.
// Arithmetic panics on overflow instead of wrapping.
type Dist = uint128.Uint128

// DistOf returns v as a Dist.
func DistOf(v uint64) Dist { return uint128.From64(v) }

// SquaredDistance returns the exact squared Euclidean distance between p and q.
//
// Steps:
//  1. Take the absolute difference on each axis (unsigned, so no sign games).
//  2. Square each difference into a full 128-bit product.
//  3. Sum the three products.
func SquaredDistance(p, q Point) Dist {
	return square(absDiff(p.X, q.X)).
		Add(square(absDiff(p.Y, q.Y))).
		Add(square(absDiff(p.Z, q.Z)))
}

func square(v uint64) Dist {
	return uint128.From64(v).Mul64(v)
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}

	return b - a
}

// Package space defines the input domain of junctionforest: integer points in
// three-dimensional space and the exact squared Euclidean distance between them.
//
// What & Why
//
//   - Point is a triple of non-negative integer coordinates. A point has no ID of
//     its own; it is identified solely by its index in a PointSet.
//
//   - Dist is an unsigned 128-bit integer. Squaring the difference of two 62-bit
//     coordinates already needs 124 bits, and three axes are summed, so a plain
//     uint64 would silently wrap on realistic inputs. Dist arithmetic panics on
//     overflow, which cannot happen while every coordinate is at most MaxCoord.
//
//   - Parse reads the textual form used by the puzzle inputs: one point per line,
//     written as "x,y,z". Blank lines are ignored.
//
// Error Conditions
//
//	Parse returns wrapped sentinel errors that carry the 1-based line number:
//
//	- ErrMalformedLine
//	    - the line does not have exactly three comma-separated fields, OR
//	    - a field is not an unsigned decimal integer.
//
//	- ErrCoordRange
//	    - a coordinate is larger than MaxCoord.
//
// Complexity
//
//   - SquaredDistance: O(1), three 64x64->128 multiplications.
//   - Parse:           O(L) in the input length.
package space

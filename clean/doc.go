// Package clean removes floating-point noise from numeric arrays.
//
// Two passes are applied to a copy of the input:
//
//  1. Flush: every element with |v| < tol becomes exactly +0.
//  2. Coalesce: magnitudes are sorted ascending and grouped around an anchor
//     (the group's smallest member) using the numpy isclose test with
//     rtol = tol and atol = 0.1·tol. Every group of two or more members is
//     replaced by its median magnitude; each element then gets its own sign
//     back.
//
// After cleaning, values that only differed by round-off are bit-identical
// in magnitude:
//
//	Clean([1e-12, 0.50000000001, 0.49999999999, 5.0])
//	  → [0, 0.5, 0.5, 5]
//
// Grouping depends only on the sorted order and the tolerance; ties in
// magnitude keep their original relative order (stable sort), so results are
// reproducible. NaN never joins a group; equal infinities do.
//
// Arrays of any rank are cleaned as a flat row-major stream. CleanMatrix
// handles matrix.Matrix inputs and Wrap cleans the output of a producer
// function.
package clean

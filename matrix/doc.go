// Package matrix provides the dense row-major storage used by nputil, the
// block-diagonal assembly routine and tolerant comparison.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over mutable 2-D float64 arrays.
//   - Dense, a concrete row-major implementation backed by one flat slice
//     (offset = i*cols + j) whose accessors return errors instead of panicking.
//   - BlockDiag, which places a sequence of blocks along the diagonal of a
//     zero-filled result.
//   - AllClose, the elementwise isclose test shared with package tolerance.
//
// Packages clean, fuzzysort and chunk accept any Matrix and take fast paths
// on *Dense.
//
// See the examples in this package for usage patterns.
package matrix

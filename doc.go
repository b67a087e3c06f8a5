// Package nputil is a set of small numeric utilities for mesh and solver
// pipelines: locality codes, round-off cleanup, tolerant multi-key sorting
// and the array plumbing around them.
//
// Everything lives in subpackages; this package only documents the layout.
//
//	morton/     Morton (Z-order) codes for integer coordinate tuples, 32 or 64 bit
//	clean/      flush near-zero values and snap near-equal magnitudes together
//	fuzzysort/  lexicographic index sort that treats values within tol as tied
//	tolerance/  anchor grouping, isclose and median shared by clean and fuzzysort
//	matrix/     Dense storage, block-diagonal assembly, AllClose
//	chunk/      array_split style sections and batched iteration
//	dtype/      element type tables (C type names, Go kinds, sizes)
//	npeval/     allow-listed arithmetic expressions over named arrays
//	nperr/      error classes (shape, value, index) every sentinel wraps
//
// Quick example:
//
//	codes, _ := morton.Encode64(points, []uint32{1023, 1023, 1023})
//	vals, _ := clean.Clean(coeffs)
//	order, _ := fuzzysort.Sort([][]float64{xs, ys}, idx)
//
// All operations are pure: they never modify their inputs and may be called
// concurrently on disjoint data. Failures are reported as wrapped sentinels;
// errors.Is(err, nperr.ErrShape) (or ErrValue, ErrIndex) classifies any of them.
package nputil

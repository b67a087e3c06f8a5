// Package fuzzysort orders indices lexicographically over several coordinate
// dimensions, treating values that lie within a tolerance of each other as
// tied.
//
// The table holds D coordinate arrays sharing one index space; table[d][i] is
// the d-th coordinate of item i. Sorting runs one dimension at a time:
//
//  1. Stable-sort the working indices by table[dim].
//  2. Walk the sorted run and open a group at each anchor; the next index
//     stays in the group while table[dim][j] − table[dim][anchor] < tol.
//  3. Every group of two or more indices is sorted again at dim+1, in place.
//
// Recursion ends when the dimensions run out, leaving still-tied indices in
// the order of the last stable sort. Grouping is anchored: a run of values
// each within tol of its neighbour is split once it drifts tol away from the
// first member.
//
// Typical use is ordering mesh points so that points that differ only by
// round-off sort by their next coordinate:
//
//	order, err := fuzzysort.Sort([][]float64{xs, ys, zs}, idx, fuzzysort.WithTolerance(1e-8))
//
// Values are compared after conversion to float64; NaN sorts after every
// number and is never tied with anything.
package fuzzysort

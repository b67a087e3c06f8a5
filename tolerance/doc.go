// Package tolerance implements the anchor-based tolerance grouping shared by
// the cleanup and fuzzy-sort algorithms, together with the numpy-style
// closeness test and median helper they rely on.
//
// 🚀 Anchor grouping
//
//	Given a sequence that is already sorted ascending, Groups splits it into
//	maximal runs. A run starts at its anchor (first element) and keeps
//	absorbing the next element while that element is "near" the ANCHOR,
//	never the previous element. Runs therefore cannot creep past the
//	anchor's tolerance band:
//
//	  values: 0.0  0.6  1.2   tol = 1.0
//	  anchor: [0.0 0.6] [1.2]            (1.2 − 0.0 ≥ tol, chain stops)
//
//	Nearest-neighbour chaining would have produced a single run here; that
//	is NOT what this package does, and downstream numerical results depend
//	on the anchor behaviour.
//
// ⚙️ Usage:
//
//	spans := tolerance.Groups(len(sorted), func(a, j int) bool {
//		return sorted[j]-sorted[a] < tol
//	})
//	for _, s := range spans {
//		if s.Len() > 1 { ... }
//	}
//
// Complexity: Groups is O(n) calls to near; Median is O(1) on sorted input.
package tolerance

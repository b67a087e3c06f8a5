// Package morton encodes batches of integer coordinate tuples into Morton
// (Z-order) locality codes of a fixed bit width.
//
// 🚀 What is a Morton code?
//
//	The bits of the D coordinates of a point are interleaved into a single
//	unsigned integer: bit j of coordinate i lands at code bit D*j + i.
//	Sorting points by their code walks the coordinate space in Z-order, so
//	points close in code order are, on average, close in space.
//
//	  (x=1, y=0) → 0b01 = 1        (x=0, y=1) → 0b10 = 2
//	  (x=1, y=1) → 0b11 = 3        (x=2, y=0) → 0b0100 = 4
//
// ✨ Key features:
//   - 32- or 64-bit codes (Encode32, Encode64, or Encode with a BitWidth).
//   - Fixed per-dimension budget ibits = width / D; unused high bits stay 0.
//   - Lossy fitting: a dimension whose maximum needs more than ibits bits is
//     right-shifted by bitlen(max) − ibits before interleaving. Callers whose
//     ranges exceed the budget trade precision for a fixed code width.
//   - Cache-blocked processing with an optional bounded worker pool; the
//     output never depends on block size or worker count.
//   - Decode recovers the (shifted) coordinates from a code.
//
// ⚙️ Usage:
//
//	codes, err := morton.Encode64(points, []uint32{1023, 1023, 1023},
//		morton.WithWorkers(4))
//
// Performance:
//
//   - Time:   O(N·D·ibits)
//   - Memory: O(N) for the output.
//
// Errors:
//   - ErrDimensionMismatch / ErrNoDimensions (nperr.ErrShape)
//   - ErrBitWidth, ErrNegative, ErrCoordinateOutOfRange (nperr.ErrValue)
package morton

// SPDX-License-Identifier: MIT

package morton

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/nputil/chunk"
	"github.com/katalvlaran/nputil/dtype"
)

// code is the set of output word types.
type code interface{ ~uint32 | ~uint64 }

// Encode interleaves every point of points into a Morton code of the given width.
// Codes are returned as uint64 regardless of width; 32-bit codes never set
// bits above 31.
//
// Implementation:
//   - Stage 1: validate width, then shapes and coordinates (see Errors).
//   - Stage 2: ibits = width/D and per-dimension shifts (see Shifts).
//   - Stage 3: split the points into max(1, N/blockSize) near-equal blocks and
//     interleave each block, sequentially or on a bounded worker pool.
//
// Inputs:
//   - points: N tuples of D non-negative integers.
//   - dimMax: per-dimension maximum coordinate, length D.
//   - width : Width32 or Width64.
//
// Errors:
//   - ErrBitWidth if width ∉ {32, 64}.
//   - ErrNoDimensions if D == 0; ErrDimensionMismatch if len(point) != D.
//   - ErrNegative for negative coordinates or maxima.
//   - ErrCoordinateOutOfRange for point[i] > dimMax[i] (WithBoundsCheck only).
//
// Complexity:
//   - Time O(N·D·ibits), Space O(N).
func Encode[T constraints.Integer](points [][]T, dimMax []T, width BitWidth, opts ...Option) ([]uint64, error) {
	switch width {
	case Width32:
		c32, err := encode[uint32]("Encode", points, dimMax, width, gatherOptions(opts))
		if err != nil {
			return nil, err
		}
		out := make([]uint64, len(c32))
		for i, c := range c32 {
			out[i] = uint64(c)
		}

		return out, nil
	case Width64:
		return encode[uint64]("Encode", points, dimMax, width, gatherOptions(opts))
	}

	return nil, fmt.Errorf("Encode(width=%d): %w", width, ErrBitWidth)
}

// Encode32 is Encode with Width32 and a []uint32 result.
func Encode32[T constraints.Integer](points [][]T, dimMax []T, opts ...Option) ([]uint32, error) {
	return encode[uint32]("Encode32", points, dimMax, Width32, gatherOptions(opts))
}

// Encode64 is Encode with Width64.
func Encode64[T constraints.Integer](points [][]T, dimMax []T, opts ...Option) ([]uint64, error) {
	return encode[uint64]("Encode64", points, dimMax, Width64, gatherOptions(opts))
}

// EncodeDType is Encode with the width taken from an unsigned code element
// type: dtype.Uint32 or dtype.Uint64. Any other dtype yields ErrBitWidth.
func EncodeDType[T constraints.Integer](points [][]T, dimMax []T, dt dtype.DType, opts ...Option) ([]uint64, error) {
	switch dt {
	case dtype.Uint32, dtype.Uint64:
		return Encode(points, dimMax, BitWidth(dt.Bits()), opts...)
	}

	return nil, fmt.Errorf("EncodeDType(%s): %w", dt, ErrBitWidth)
}

// Shifts returns the per-dimension right shift applied before interleaving:
//
//	ishift[d] = max(bitlen(dimMax[d]) − width/D, 0),   bitlen(0) = 0
//
// A non-zero shift means that dimension's low bits are discarded so that its
// range fits the fixed per-dimension budget.
//
// Errors:
//   - ErrBitWidth, ErrNoDimensions, ErrNegative.
func Shifts[T constraints.Integer](dimMax []T, width BitWidth) ([]uint, error) {
	if !width.valid() {
		return nil, fmt.Errorf("Shifts(width=%d): %w", width, ErrBitWidth)
	}

	return shifts(dimMax, width)
}

// shifts assumes width is valid.
func shifts[T constraints.Integer](dimMax []T, width BitWidth) ([]uint, error) {
	d := len(dimMax)
	if d == 0 {
		return nil, ErrNoDimensions
	}
	ibits := int(width) / d
	out := make([]uint, d)
	for i, m := range dimMax {
		if m < 0 {
			return nil, fmt.Errorf("dimMax[%d]=%d: %w", i, m, ErrNegative)
		}
		if s := bits.Len64(uint64(m)) - ibits; s > 0 {
			out[i] = uint(s)
		}
	}

	return out, nil
}

// encode validates inputs and fills one code per point.
func encode[C code, T constraints.Integer](op string, points [][]T, dimMax []T, width BitWidth, o Options) ([]C, error) {
	shift, err := shifts(dimMax, width)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = validatePoints(points, dimMax, o.boundsCheck); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	d := len(dimMax)
	ibits := int(width) / d
	nblocks := max(1, len(points)/o.blockSize)
	blocks, err := chunk.Split(len(points), nblocks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx := context.Background()
	if o.logger.Enabled(ctx, slog.LevelDebug) {
		for i, s := range shift {
			if s > 0 {
				o.logger.DebugContext(ctx, "morton: dimension coarsened",
					"dim", i, "max", uint64(dimMax[i]), "shift", s, "ibits", ibits)
			}
		}
		o.logger.DebugContext(ctx, "morton: encode plan",
			"points", len(points), "dims", d, "width", int(width),
			"ibits", ibits, "blocks", len(blocks), "workers", min(o.workers, len(blocks)))
	}

	codes := make([]C, len(points))
	if o.workers == 1 || len(blocks) == 1 {
		for _, b := range blocks {
			encodeBlock(points[b.Start:b.End], codes[b.Start:b.End], shift, ibits)
		}

		return codes, nil
	}

	// Blocks write disjoint sub-slices of codes; no further coordination needed.
	var g errgroup.Group
	g.SetLimit(o.workers)
	for _, b := range blocks {
		g.Go(func() error {
			encodeBlock(points[b.Start:b.End], codes[b.Start:b.End], shift, ibits)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return codes, nil
}

// validatePoints checks every point's length and coordinate range.
func validatePoints[T constraints.Integer](points [][]T, dimMax []T, boundsCheck bool) error {
	d := len(dimMax)
	for n, p := range points {
		if len(p) != d {
			return fmt.Errorf("point %d has %d coordinates, want %d: %w", n, len(p), d, ErrDimensionMismatch)
		}
		for i, v := range p {
			if v < 0 {
				return fmt.Errorf("point %d dim %d = %d: %w", n, i, v, ErrNegative)
			}
			if boundsCheck && v > dimMax[i] {
				return fmt.Errorf("point %d dim %d = %d > %d: %w", n, i, v, dimMax[i], ErrCoordinateOutOfRange)
			}
		}
	}

	return nil
}

// encodeBlock interleaves one cache block: bit j of (p[i] >> shift[i]) goes
// to code bit d*j + i, for j < ibits.
func encodeBlock[C code, T constraints.Integer](points [][]T, out []C, shift []uint, ibits int) {
	d := len(shift)
	for n, p := range points {
		var c C
		for i, v := range p {
			u := uint64(v) >> shift[i]
			for j := 0; j < ibits; j++ {
				c |= C((u>>j)&1) << (d*j + i)
			}
		}
		out[n] = c
	}
}

// Decode de-interleaves code back into D coordinates, each already right-
// shifted by its Shifts value (the shift itself cannot be undone).
//
// Errors:
//   - ErrBitWidth for an unsupported width or a code wider than width.
//   - ErrNoDimensions for dims ≤ 0.
//
// Complexity:
//   - Time O(width), Space O(D).
func Decode(code uint64, dims int, width BitWidth) ([]uint64, error) {
	if !width.valid() {
		return nil, fmt.Errorf("Decode(width=%d): %w", width, ErrBitWidth)
	}
	if width == Width32 && code > math.MaxUint32 {
		return nil, fmt.Errorf("Decode(code=%#x): code exceeds 32 bits: %w", code, ErrBitWidth)
	}
	if dims <= 0 {
		return nil, fmt.Errorf("Decode(dims=%d): %w", dims, ErrNoDimensions)
	}

	ibits := int(width) / dims
	out := make([]uint64, dims)
	for i := range out {
		var v uint64
		for j := 0; j < ibits; j++ {
			v |= ((code >> (dims*j + i)) & 1) << j
		}
		out[i] = v
	}

	return out, nil
}

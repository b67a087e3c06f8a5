// SPDX-License-Identifier: MIT

package morton

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/nputil/internal/slogutil"
	"github.com/katalvlaran/nputil/nperr"
)

// BitWidth selects the width of the generated codes.
type BitWidth int

const (
	// Width32 produces 32-bit codes.
	Width32 BitWidth = 32

	// Width64 produces 64-bit codes.
	Width64 BitWidth = 64
)

// valid reports whether w is a supported code width.
func (w BitWidth) valid() bool { return w == Width32 || w == Width64 }

var (
	// ErrBitWidth indicates an unsupported code width (only 32 and 64 are valid).
	ErrBitWidth = fmt.Errorf("morton: bit width must be 32 or 64: %w", nperr.ErrValue)

	// ErrDimensionMismatch indicates a point whose length differs from len(dimMax).
	ErrDimensionMismatch = fmt.Errorf("morton: point dimensionality mismatch: %w", nperr.ErrShape)

	// ErrNoDimensions indicates an empty dimMax (D == 0).
	ErrNoDimensions = fmt.Errorf("morton: at least one dimension is required: %w", nperr.ErrShape)

	// ErrNegative indicates a negative coordinate or per-dimension maximum.
	ErrNegative = fmt.Errorf("morton: coordinates must be non-negative: %w", nperr.ErrValue)

	// ErrCoordinateOutOfRange indicates a coordinate above its declared maximum.
	// Only reported when WithBoundsCheck is enabled.
	ErrCoordinateOutOfRange = fmt.Errorf("morton: coordinate exceeds dimension maximum: %w", nperr.ErrValue)
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBlockSize is the number of points per cache block.
	DefaultBlockSize = 16384

	// DefaultWorkers processes blocks sequentially.
	DefaultWorkers = 1

	// DefaultBoundsCheck leaves coordinates above dimMax unchecked; their
	// excess bits are silently dropped, as in the unchecked encoder.
	DefaultBoundsCheck = false
)

const (
	panicBlockSizeInvalid = "morton: WithBlockSize: n must be > 0"
	panicWorkersInvalid   = "morton: WithWorkers: n must be > 0"
)

// Option mutates encoder options.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	blockSize   int          // points per block; DefaultBlockSize
	workers     int          // concurrent blocks; DefaultWorkers
	boundsCheck bool         // DefaultBoundsCheck
	logger      *slog.Logger // discard by default
}

// WithBlockSize sets the nominal number of points per cache block.
// The block count is max(1, N/n); blocks differ in size by at most one point.
// Panics if n ≤ 0.
func WithBlockSize(n int) Option {
	if n <= 0 {
		panic(panicBlockSizeInvalid)
	}

	return func(o *Options) { o.blockSize = n }
}

// WithWorkers bounds the number of blocks encoded concurrently.
// Panics if n ≤ 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithBoundsCheck makes a coordinate above its dimension maximum an error
// (ErrCoordinateOutOfRange) instead of silently losing high bits.
func WithBoundsCheck() Option {
	return func(o *Options) { o.boundsCheck = true }
}

// WithLogger routes debug records (encode plan, coarsened dimensions) to l.
// A nil logger keeps the default discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = slogutil.OrDiscard(l) }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) Options {
	o := Options{
		blockSize:   DefaultBlockSize,
		workers:     DefaultWorkers,
		boundsCheck: DefaultBoundsCheck,
		logger:      slogutil.NewDiscardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

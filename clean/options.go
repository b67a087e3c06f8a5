// SPDX-License-Identifier: MIT

package clean

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/nputil/internal/slogutil"
	"github.com/katalvlaran/nputil/tolerance"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the flush threshold and relative coalescing tolerance.
	DefaultTolerance = 1e-10

	// DefaultEnabled makes Wrap clean its producer's output.
	DefaultEnabled = true

	// atolFactor scales the tolerance into the absolute coalescing tolerance.
	atolFactor = 0.1
)

// ErrTolerance indicates a negative, NaN or infinite tolerance.
var ErrTolerance = fmt.Errorf("clean: %w", tolerance.ErrInvalid)

// Option mutates cleaning options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol     float64      // DefaultTolerance
	enabled bool         // DefaultEnabled (Wrap only)
	logger  *slog.Logger // discard by default
}

// WithTolerance sets the cleaning tolerance. It is validated when the
// options are applied; an invalid value makes the operation return ErrTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tol = tol }
}

// WithEnabled switches cleaning on or off for Wrap. Clean and CleanMatrix
// always clean.
func WithEnabled(enabled bool) Option {
	return func(o *Options) { o.enabled = enabled }
}

// WithLogger routes debug records (flush and coalesce counts) to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = slogutil.OrDiscard(l) }
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts []Option) (Options, error) {
	o := Options{
		tol:     DefaultTolerance,
		enabled: DefaultEnabled,
		logger:  slogutil.NewDiscardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if tolerance.Validate(o.tol) != nil {
		return o, fmt.Errorf("tol=%g: %w", o.tol, ErrTolerance)
	}

	return o, nil
}

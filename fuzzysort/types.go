// SPDX-License-Identifier: MIT

package fuzzysort

import (
	"fmt"
	"log/slog"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/nputil/internal/slogutil"
	"github.com/katalvlaran/nputil/nperr"
	"github.com/katalvlaran/nputil/tolerance"
)

// Number is the set of coordinate element types.
type Number interface {
	constraints.Integer | constraints.Float
}

var (
	// ErrIndexOutOfRange indicates an index outside some coordinate array.
	ErrIndexOutOfRange = fmt.Errorf("fuzzysort: index out of range: %w", nperr.ErrIndex)

	// ErrEmptyTable indicates indices were given for a table with no dimensions.
	ErrEmptyTable = fmt.Errorf("fuzzysort: empty coordinate table: %w", nperr.ErrShape)

	// ErrMatrixRead indicates a matrix that failed to return all of its rows.
	ErrMatrixRead = fmt.Errorf("fuzzysort: matrix rows could not be read: %w", nperr.ErrValue)

	// ErrTolerance indicates a negative, NaN or infinite tolerance.
	ErrTolerance = fmt.Errorf("fuzzysort: %w", tolerance.ErrInvalid)

	// ErrDim indicates a negative starting dimension.
	ErrDim = fmt.Errorf("fuzzysort: dimension must be >= 0: %w", nperr.ErrValue)
)

const (
	// DefaultTolerance is the absolute tie tolerance.
	DefaultTolerance = 1e-6

	// DefaultDim is the first dimension compared.
	DefaultDim = 0
)

// Option mutates sort options.
type Option func(*Options)

// Options stores the effective configuration.
type Options struct {
	tol    float64
	dim    int
	logger *slog.Logger
}

// WithTolerance sets the absolute tie tolerance; tol = 0 disables ties.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tol = tol }
}

// WithDim starts comparison at dimension d instead of 0.
func WithDim(d int) Option {
	return func(o *Options) { o.dim = d }
}

// WithLogger routes per-dimension tie statistics to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = slogutil.OrDiscard(l) }
}

func gatherOptions(opts []Option) (Options, error) {
	o := Options{tol: DefaultTolerance, dim: DefaultDim, logger: slogutil.NewDiscardLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if tolerance.Validate(o.tol) != nil {
		return o, fmt.Errorf("tol=%g: %w", o.tol, ErrTolerance)
	}
	if o.dim < 0 {
		return o, fmt.Errorf("dim=%d: %w", o.dim, ErrDim)
	}

	return o, nil
}

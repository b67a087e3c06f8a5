// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every sentinel wraps one root of the nperr taxonomy, so callers may
// match either the precise sentinel or its class via errors.Is.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/nputil/nperr"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites add operation context with
// fmt.Errorf("Op: %w", ErrX); errors.Is keeps matching.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// or that a constructor received a buffer whose length disagrees with rows*cols.
	ErrInvalidDimensions = fmt.Errorf("matrix: dimensions must be > 0: %w", nperr.ErrShape)

	// ErrDimensionMismatch indicates two matrices whose shapes must agree do not.
	ErrDimensionMismatch = fmt.Errorf("matrix: dimension mismatch: %w", nperr.ErrShape)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = fmt.Errorf("matrix: index out of range: %w", nperr.ErrIndex)

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = fmt.Errorf("matrix: nil matrix: %w", nperr.ErrValue)

	// ErrNoBlocks is returned by BlockDiag when called without blocks.
	ErrNoBlocks = fmt.Errorf("matrix: no blocks to assemble: %w", nperr.ErrShape)
)

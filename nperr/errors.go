// SPDX-License-Identifier: MIT

// Package nperr defines the error taxonomy shared by every nputil package.
//
// Three roots classify all user-triggered failures:
//
//   - ErrShape: dimension/length mismatches between parallel arrays.
//   - ErrValue: invalid parameters (unsupported bit width, bad tolerance, ...).
//   - ErrIndex: an index outside the addressable table.
//
// Packages declare their own "<pkg>: ..." sentinels that wrap one of these
// roots, so callers can match either the precise sentinel or the class:
//
//	if errors.Is(err, nperr.ErrShape) { ... }
//
// All errors are detected during input validation and returned immediately.
// Nothing is retried; none of the operations have transient failure modes.
package nperr

import "errors"

var (
	// ErrShape marks dimension or length mismatches between parallel inputs.
	ErrShape = errors.New("nputil: shape error")

	// ErrValue marks an invalid parameter value.
	ErrValue = errors.New("nputil: value error")

	// ErrIndex marks an index outside the addressable range.
	ErrIndex = errors.New("nputil: index error")
)

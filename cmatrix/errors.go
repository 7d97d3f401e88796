// SPDX-License-Identifier: MIT

package cmatrix

import "errors"

var (
	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrSingular is returned when a zero pivot is encountered during
	// Gauss-Jordan elimination. Near-singular inputs that still admit a
	// nonzero pivot do not error; they produce large entries instead.
	ErrSingular = errors.New("cmatrix: singular matrix")
)

// Internal panic messages (no magic strings in call sites).
const (
	panicBadShape    = "cmatrix: dimensions must be > 0"
	panicOutOfRange  = "cmatrix: index out of range"
	panicShapeMismat = "cmatrix: shape mismatch"
)

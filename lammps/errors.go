package lammps

import "errors"

var (
	// ErrBoxBoundsNotFound indicates the "ITEM: BOX BOUNDS pp pp pp" marker
	// is absent from the coordinate file.
	ErrBoxBoundsNotFound = errors.New("lammps: box bounds marker not found")

	// ErrMalformedBounds indicates a bounds line after the marker does not
	// hold exactly one numeric min/max pair.
	ErrMalformedBounds = errors.New("lammps: malformed box bounds line")

	// ErrMalformedRow indicates a non-numeric field or an inconsistent
	// column count in a data row.
	ErrMalformedRow = errors.New("lammps: malformed numeric row")

	// ErrShortFile indicates the file ended before the requested header
	// skip count, or held no data rows.
	ErrShortFile = errors.New("lammps: file shorter than expected")

	// ErrNotSquare indicates the Hessian file is not a square matrix.
	ErrNotSquare = errors.New("lammps: hessian matrix is not square")
)

// Package lammps reads the simulation artifacts the pipeline consumes:
// a whitespace-delimited mass-weighted Hessian dump and an unwrapped-atom
// coordinate file carrying the periodic box bounds.
//
// What:
//
//   - ReadHessian: dense numeric matrix, optional header rows skipped,
//     square-shape enforced.
//   - ReadCrystal: tabular per-atom rows after a fixed header skip; all
//     columns are retained, downstream code addresses positions at
//     columns 3..5.
//   - ReadBoxBounds: locates the literal "ITEM: BOX BOUNDS pp pp pp"
//     marker and parses the three min/max pairs that follow.
//
// Why:
//
//	The files are owned by upstream molecular-dynamics tooling and are
//	consumed read-only. Parsing is deliberately strict: a missing marker or
//	a malformed numeric row is a hard input-format failure, surfaced
//	immediately and never retried.
//
// Errors:
//
//   - ErrBoxBoundsNotFound: the box-bounds marker is absent.
//   - ErrMalformedBounds: a bounds line does not hold a numeric min/max pair.
//   - ErrMalformedRow: a data row holds a non-numeric field or a row width
//     inconsistent with the first row.
//   - ErrShortFile: the file ends before the requested header skip or holds
//     no data rows at all.
//   - ErrNotSquare: the Hessian row count does not match its column count.
package lammps

package hessian

import "errors"

var (
	// ErrNotSquare indicates a matrix expected to be square was not.
	ErrNotSquare = errors.New("hessian: matrix is not square")

	// ErrBadReplication indicates a replication count outside the valid
	// range; rep_z < 2 would let edge removal consume every layer.
	ErrBadReplication = errors.New("hessian: replication counts must be ≥ 1 and rep_z ≥ 2")

	// ErrBadAtomCount indicates natm_per_unitcell < 1.
	ErrBadAtomCount = errors.New("hessian: atoms per unit cell must be ≥ 1")

	// ErrBadCrystal indicates the coordinate table is too narrow to carry
	// positions at columns 3..5, or holds no rows.
	ErrBadCrystal = errors.New("hessian: crystal table must have ≥ 6 columns and ≥ 1 row")

	// ErrDimensionMismatch indicates the Hessian dimension, lattice-point
	// count and replication counts are inconsistent with one another.
	ErrDimensionMismatch = errors.New("hessian: dimension mismatch between hessian, lattice and replication")
)

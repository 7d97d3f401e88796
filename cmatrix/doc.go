// Package cmatrix provides the dense complex128 matrix kernels used by the
// surface Green's function solver.
//
// What:
//
//   - Dense: a row-major dense matrix of complex128 values.
//   - Constructors: New, Identity, FromReal (lift a gonum mat.Matrix).
//   - Kernels: Add, Sub, Mul, Scale, ConjTranspose, Inverse.
//   - RealNormDiff: Frobenius norm of the real part of a difference, the
//     convergence metric of the decimation iteration.
//
// Why:
//
//	gonum's mat package carries real dense linear algebra and a complex
//	CDense type, but no complex inversion. The decimation recursion inverts
//	dense complex blocks on every step, so the package keeps its own small,
//	deterministic Gauss-Jordan kernel with partial pivoting.
//
// Conventions:
//
//   - All kernels allocate a fresh result; operands are never mutated.
//   - Shape mismatches and out-of-range indices are programmer errors and
//     panic; only numerical failure (singular pivot) returns an error.
//   - Loop orders are fixed, so results are bit-for-bit deterministic.
//
// Complexity:
//
//   - Add/Sub/Scale/ConjTranspose: O(r·c).
//   - Mul: O(r·k·c).
//   - Inverse: O(n³), memory O(n²).
//
// Errors:
//
//   - ErrNonSquare: Inverse called on a non-square matrix.
//   - ErrSingular: a zero pivot was encountered during elimination.
package cmatrix

// SPDX-License-Identifier: MIT

package cmatrix

import (
	"math"
	"math/cmplx"
)

// Add returns a + b. Operands are not mutated.
func Add(a, b *Dense) *Dense {
	sameShape(a, b)
	out := New(a.rows, a.cols)
	for i := range a.data {
		out.data[i] = a.data[i] + b.data[i]
	}

	return out
}

// Sub returns a - b. Operands are not mutated.
func Sub(a, b *Dense) *Dense {
	sameShape(a, b)
	out := New(a.rows, a.cols)
	for i := range a.data {
		out.data[i] = a.data[i] - b.data[i]
	}

	return out
}

// Scale returns z·a.
func Scale(z complex128, a *Dense) *Dense {
	out := New(a.rows, a.cols)
	for i := range a.data {
		out.data[i] = z * a.data[i]
	}

	return out
}

// Mul returns the matrix product a·b. Panics if a.Cols() != b.Rows().
func Mul(a, b *Dense) *Dense {
	if a.cols != b.rows {
		panic(panicShapeMismat)
	}
	out := New(a.rows, b.cols)
	// ikj order keeps the inner loop walking contiguous rows of b.
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			aik := a.data[i*a.cols+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				out.data[i*out.cols+j] += aik * b.data[k*b.cols+j]
			}
		}
	}

	return out
}

// ConjTranspose returns the conjugate transpose a†.
func ConjTranspose(a *Dense) *Dense {
	out := New(a.cols, a.rows)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.data[j*out.cols+i] = cmplx.Conj(a.data[i*a.cols+j])
		}
	}

	return out
}

// Inverse returns a⁻¹ computed by Gauss-Jordan elimination with partial
// pivoting. Returns ErrNonSquare for rectangular inputs and ErrSingular
// when no nonzero pivot can be found in some column.
func Inverse(a *Dense) (*Dense, error) {
	if a.rows != a.cols {
		return nil, ErrNonSquare
	}
	n := a.rows
	work := a.Clone()
	inv := Identity(n)

	for col := 0; col < n; col++ {
		// Partial pivoting: pick the row with the largest magnitude in col.
		pivRow, pivMag := col, cmplx.Abs(work.data[col*n+col])
		for r := col + 1; r < n; r++ {
			if m := cmplx.Abs(work.data[r*n+col]); m > pivMag {
				pivRow, pivMag = r, m
			}
		}
		if pivMag == 0 {
			return nil, ErrSingular
		}
		if pivRow != col {
			swapRows(work, col, pivRow)
			swapRows(inv, col, pivRow)
		}

		// Normalize the pivot row.
		piv := work.data[col*n+col]
		for j := 0; j < n; j++ {
			work.data[col*n+j] /= piv
			inv.data[col*n+j] /= piv
		}

		// Eliminate col from every other row.
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := work.data[r*n+col]
			if f == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				work.data[r*n+j] -= f * work.data[col*n+j]
				inv.data[r*n+j] -= f * inv.data[col*n+j]
			}
		}
	}

	return inv, nil
}

// RealNormDiff returns the Frobenius norm of Re(a - b), the convergence
// metric of the decimation iteration.
func RealNormDiff(a, b *Dense) float64 {
	sameShape(a, b)
	var sum float64
	for i := range a.data {
		d := real(a.data[i]) - real(b.data[i])
		sum += d * d
	}

	return math.Sqrt(sum)
}

// swapRows exchanges rows i and j of d in place.
func swapRows(d *Dense, i, j int) {
	ri, rj := d.data[i*d.cols:(i+1)*d.cols], d.data[j*d.cols:(j+1)*d.cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

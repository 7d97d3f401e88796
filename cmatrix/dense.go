// SPDX-License-Identifier: MIT

package cmatrix

import (
	"gonum.org/v1/gonum/mat"
)

// Dense is a dense, row-major matrix of complex128 values.
// The zero value is not usable; construct via New, Identity or FromReal.
type Dense struct {
	rows, cols int
	data       []complex128
}

// New returns a zero-filled rows×cols matrix.
// Panics if rows or cols is not positive (programmer error).
func New(rows, cols int) *Dense {
	if rows <= 0 || cols <= 0 {
		panic(panicBadShape)
	}

	return &Dense{rows: rows, cols: cols, data: make([]complex128, rows*cols)}
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Dense {
	d := New(n, n)
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}

	return d
}

// FromReal lifts a real gonum matrix into a complex Dense with zero
// imaginary parts.
func FromReal(m mat.Matrix) *Dense {
	r, c := m.Dims()
	d := New(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.data[i*c+j] = complex(m.At(i, j), 0)
		}
	}

	return d
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.cols }

// At returns the element at (i, j). Panics on out-of-range indices.
func (d *Dense) At(i, j int) complex128 {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(panicOutOfRange)
	}

	return d.data[i*d.cols+j]
}

// Set stores v at (i, j). Panics on out-of-range indices.
func (d *Dense) Set(i, j int, v complex128) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(panicOutOfRange)
	}
	d.data[i*d.cols+j] = v
}

// Clone returns a deep copy of d.
func (d *Dense) Clone() *Dense {
	out := New(d.rows, d.cols)
	copy(out.data, d.data)

	return out
}

// sameShape panics unless a and b have identical dimensions.
func sameShape(a, b *Dense) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(panicShapeMismat)
	}
}

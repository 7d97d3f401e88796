// SPDX-License-Identifier: MIT

package green

import (
	"log"
	"math"

	"github.com/openkapitza/kapitza/cmatrix"
	"github.com/openkapitza/kapitza/fourier"
)

// buildZ returns ω²·(1 + i·δ)·I of dimension n.
func buildZ(omega, delta float64, n int) *cmatrix.Dense {
	return cmatrix.Scale(complex(omega*omega, 0)*complex(1, delta), cmatrix.Identity(n))
}

// decimate runs the renormalization recursion for one lead at one
// (wavevector, frequency) point and returns the converged effective surface
// matrix together with the number of iterations spent.
//
// The convergence test compares against an immutable snapshot of the
// previous e_surface; the updated matrix never feeds its own test.
func decimate(z *cmatrix.Dense, bulk, surface fourier.Block, opts Options) (*cmatrix.Dense, int, error) {
	eSurface := cmatrix.Sub(z, bulk.Hsn)
	prev := eSurface.Clone()
	e := eSurface.Clone()
	alpha := surface.Hopping.Clone()
	beta := cmatrix.ConjTranspose(surface.Hopping)

	for it := 1; it <= opts.MaxIterations; it++ {
		eInv, err := cmatrix.Inverse(e)
		if err != nil {
			return nil, it, err
		}

		a := cmatrix.Mul(eInv, alpha)
		b := cmatrix.Mul(eInv, beta)
		ab := cmatrix.Mul(alpha, b)

		eSurface = cmatrix.Add(eSurface, ab)
		e = cmatrix.Add(e, cmatrix.Add(cmatrix.Mul(beta, a), ab))
		alpha = cmatrix.Mul(alpha, a)
		beta = cmatrix.Mul(beta, b)

		if cmatrix.RealNormDiff(eSurface, prev) < opts.Tolerance {
			return eSurface, it, nil
		}
		prev = eSurface.Clone()
	}

	return nil, opts.MaxIterations, ErrNotConverged
}

// surfaceGreen derives the retarded surface Green's function of one lead:
// g = (Z − Hsn − Hop·e_surface⁻¹·Hop†)⁻¹, where e_surface acts as the
// effective lead self-energy.
func surfaceGreen(z *cmatrix.Dense, bulk, surface fourier.Block, opts Options) (*cmatrix.Dense, int, error) {
	eSurface, iters, err := decimate(z, bulk, surface, opts)
	if err != nil {
		return nil, iters, err
	}

	esInv, err := cmatrix.Inverse(eSurface)
	if err != nil {
		return nil, iters, err
	}

	sigma := cmatrix.Mul(bulk.Hopping, cmatrix.Mul(esInv, cmatrix.ConjTranspose(bulk.Hopping)))
	g, err := cmatrix.Inverse(cmatrix.Sub(cmatrix.Sub(z, bulk.Hsn), sigma))
	if err != nil {
		return nil, iters, err
	}

	return g, iters, nil
}

// solvePoint computes both leads' surface Green's functions for one
// (wavevector, frequency) task. Failures are wrapped with coordinates and
// confined to the returned Point.
func solvePoint(left, right Lead, kIndex int, omega float64, opts Options) Point {
	pt := Point{KIndex: kIndex, Omega: omega}

	n := left.Bulk[kIndex].Hsn.Rows()
	z := buildZ(omega, opts.Delta, n)

	g, iters, err := surfaceGreen(z, left.Bulk[kIndex], left.Surface[kIndex], opts)
	if err != nil {
		pt.Err = &PointError{KIndex: kIndex, Omega: omega, Lead: "left", Err: err}

		return pt
	}
	pt.Left = g
	pt.Iterations = iters
	if opts.Verbose {
		log.Printf("green: left lead k=%d omega=%g converged in %d iterations", kIndex, omega, iters)
	}

	g, iters, err = surfaceGreen(z, right.Bulk[kIndex], right.Surface[kIndex], opts)
	if err != nil {
		pt.Err = &PointError{KIndex: kIndex, Omega: omega, Lead: "right", Err: err}
		pt.Left = nil
		pt.Iterations = 0

		return pt
	}
	pt.Right = g
	if iters > pt.Iterations {
		pt.Iterations = iters
	}
	if opts.Verbose {
		log.Printf("green: right lead k=%d omega=%g converged in %d iterations", kIndex, omega, iters)
	}

	return pt
}

// validateSweep checks options and sweep bounds before any work starts.
func validateSweep(left, right Lead, omegaMin, omegaMax float64, omegaNum int, opts Options) error {
	if err := left.validate(); err != nil {
		return err
	}
	if err := right.validate(); err != nil {
		return err
	}
	if len(left.Bulk) != len(right.Bulk) {
		return ErrLeadMismatch
	}
	// Z is built once per point from the left lead's dimension, so both
	// leads must agree on it.
	if left.dim() != right.dim() {
		return ErrLeadMismatch
	}
	if opts.Delta <= 0 || math.IsInf(opts.Delta, 0) || math.IsNaN(opts.Delta) {
		return ErrBadBroadening
	}
	if omegaNum < 1 || math.IsNaN(omegaMin) || math.IsNaN(omegaMax) ||
		math.IsInf(omegaMin, 0) || math.IsInf(omegaMax, 0) || omegaMin > omegaMax {
		return ErrBadSweep
	}

	return nil
}

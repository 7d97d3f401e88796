// SPDX-License-Identifier: MIT

package green

import (
	"errors"
	"fmt"

	"github.com/openkapitza/kapitza/cmatrix"
	"github.com/openkapitza/kapitza/fourier"
)

// Defaults for the decimation policy; DefaultOptions is the single source
// of truth for zero-value behavior.
const (
	// DefaultDelta is the small positive broadening keeping Z invertible
	// near resonances.
	DefaultDelta = 1e-6

	// DefaultTolerance bounds the Frobenius norm of the change in
	// Re(e_surface) between successive iterations.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations is the hard cap on decimation steps; reaching it
	// is a non-convergence failure, not an answer.
	DefaultMaxIterations = 5000
)

var (
	// ErrNotConverged indicates the decimation hit MaxIterations before the
	// tolerance was met.
	ErrNotConverged = errors.New("green: decimation did not converge within iteration cap")

	// ErrBadBroadening indicates delta ≤ 0 or non-finite.
	ErrBadBroadening = errors.New("green: broadening delta must be strictly positive")

	// ErrBadSweep indicates an invalid frequency sweep specification.
	ErrBadSweep = errors.New("green: invalid frequency sweep")

	// ErrLeadMismatch indicates inconsistent wavevector grids or block
	// dimensions between the bulk and surface block sets, or between the
	// two leads.
	ErrLeadMismatch = errors.New("green: lead block sets disagree in length or dimension")

	// ErrEmptyLead indicates a lead with no wavevector samples.
	ErrEmptyLead = errors.New("green: lead has no wavevector samples")
)

// Options configures the decimation solver and the sweep scheduler.
type Options struct {
	// Delta is the broadening in Z = ω²(1 + i·Delta)·I. Must be > 0.
	Delta float64

	// Tolerance is the convergence threshold on Re(e_surface) changes.
	Tolerance float64

	// MaxIterations caps the decimation recursion.
	MaxIterations int

	// Workers is the worker-pool width for Sweep. Zero or negative selects
	// runtime.NumCPU().
	Workers int

	// Verbose reports per-point iteration counts through the standard
	// logger. Off by default; the library stays silent.
	Verbose bool
}

// DefaultOptions returns the reference decimation policy.
func DefaultOptions() Options {
	return Options{
		Delta:         DefaultDelta,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Lead couples the two k-resolved block sets describing one semi-infinite
// lead: the bulk principal layer and the surface layer whose hopping feeds
// the recursion. Both must sample the same wavevector grid.
type Lead struct {
	Bulk    []fourier.Block
	Surface []fourier.Block
}

// validate checks the lead's internal consistency: matching grids, and
// every block square with one shared dimension. A malformed block must be
// rejected here, before a worker goroutine can trip a kernel shape panic.
func (l Lead) validate() error {
	if len(l.Bulk) == 0 {
		return ErrEmptyLead
	}
	if len(l.Bulk) != len(l.Surface) {
		return ErrLeadMismatch
	}

	n := l.dim()
	if n < 1 {
		return ErrLeadMismatch
	}
	for i := range l.Bulk {
		if !blockHasDim(l.Bulk[i], n) || !blockHasDim(l.Surface[i], n) {
			return ErrLeadMismatch
		}
	}

	return nil
}

// dim reports the lead's block dimension, 0 when the first block is absent.
func (l Lead) dim() int {
	if len(l.Bulk) == 0 || l.Bulk[0].Hsn == nil {
		return 0
	}

	return l.Bulk[0].Hsn.Rows()
}

// blockHasDim reports whether both matrices of b are square of size n.
func blockHasDim(b fourier.Block, n int) bool {
	if b.Hsn == nil || b.Hopping == nil {
		return false
	}

	return b.Hsn.Rows() == n && b.Hsn.Cols() == n &&
		b.Hopping.Rows() == n && b.Hopping.Cols() == n
}

// Point is the result of one (wavevector, frequency) decimation task. On
// failure Err is a *PointError and both matrices are nil.
type Point struct {
	KIndex int
	Omega  float64

	// Left and Right are the surface Green's functions of the two leads.
	Left  *cmatrix.Dense
	Right *cmatrix.Dense

	// Iterations counts decimation steps of the slower of the two leads.
	Iterations int

	Err error
}

// Result groups the per-wavevector points of a single frequency sample.
type Result struct {
	Omega  float64
	Points []Point
}

// PointError carries the coordinates of a failed (wavevector, frequency)
// task. Unwrap exposes the underlying cause, so errors.Is matches
// ErrNotConverged and cmatrix.ErrSingular.
type PointError struct {
	KIndex int
	Omega  float64
	Lead   string
	Err    error
}

func (e *PointError) Error() string {
	return fmt.Sprintf("green: %s lead, k=%d, omega=%g: %v", e.Lead, e.KIndex, e.Omega, e.Err)
}

func (e *PointError) Unwrap() error { return e.Err }

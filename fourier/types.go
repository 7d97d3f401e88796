package fourier

import (
	"errors"

	"github.com/openkapitza/kapitza/cmatrix"
)

var (
	// ErrBadPeriodicity indicates a non-positive or non-finite transverse
	// periodicity length.
	ErrBadPeriodicity = errors.New("fourier: periodicity length must be positive and finite")

	// ErrBadSampleCount indicates num_kpoints < 1.
	ErrBadSampleCount = errors.New("fourier: sample count must be ≥ 1")

	// ErrNilBlockSet indicates Transform received a nil BlockSet.
	ErrNilBlockSet = errors.New("fourier: block set is nil")

	// ErrEmptyGrid indicates Transform received an empty wavevector grid.
	ErrEmptyGrid = errors.New("fourier: wavevector grid is empty")
)

// Wavevector is one transverse reciprocal-space sample. K1 is the
// slow-varying grid component, K2 the fast one; index p in a flattened n×n
// grid maps to (points[p/n], points[p%n]).
type Wavevector struct {
	K1, K2 float64
}

// PhaseSign selects the sign of the plane-wave phase exponent.
type PhaseSign int

const (
	// PhasePlus uses exp(+i·L·d·k), the retarded convention kept as default.
	PhasePlus PhaseSign = +1
	// PhaseMinus uses exp(−i·L·d·k).
	PhaseMinus PhaseSign = -1
)

// Options configures the block Fourier transform.
type Options struct {
	// Sign is the plane-wave phase sign convention.
	Sign PhaseSign
}

// DefaultOptions returns the default transform configuration: PhasePlus.
func DefaultOptions() Options {
	return Options{Sign: PhasePlus}
}

// Block is the k-resolved record for one wavevector: the on-site dynamical
// matrix, the inter-cell hopping matrix, and the originating wavevector for
// downstream bookkeeping.
type Block struct {
	Hsn        *cmatrix.Dense
	Hopping    *cmatrix.Dense
	Wavevector Wavevector
}

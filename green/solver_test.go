package green_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkapitza/kapitza/cmatrix"
	"github.com/openkapitza/kapitza/fourier"
	"github.com/openkapitza/kapitza/green"
)

// diagBlock builds a k-resolved block with d·I on-site and t·I hopping.
func diagBlock(n int, d, t complex128) fourier.Block {
	hsn := cmatrix.Scale(d, cmatrix.Identity(n))
	hop := cmatrix.Scale(t, cmatrix.Identity(n))

	return fourier.Block{Hsn: hsn, Hopping: hop}
}

// uniformLead builds a lead whose bulk and surface carry the same blocks.
func uniformLead(n int, d, t complex128, nk int) green.Lead {
	l := green.Lead{}
	for k := 0; k < nk; k++ {
		l.Bulk = append(l.Bulk, diagBlock(n, d, t))
		l.Surface = append(l.Surface, diagBlock(n, d, t))
	}

	return l
}

// TestSweep_ZeroHopping_OneStep pins the closed-form case: with zero
// hopping the decimation converges in exactly one step and
// g_surface = (Z − H0)⁻¹.
func TestSweep_ZeroHopping_OneStep(t *testing.T) {
	const n = 3
	const d = 0.5
	const omega = 1.25

	left := uniformLead(n, d, 0, 1)
	right := uniformLead(n, d, 0, 1)
	opts := green.DefaultOptions()

	res, err := green.Sweep(left, right, omega, omega, 1, opts)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Len(t, res[0].Points, 1)

	pt := res[0].Points[0]
	require.NoError(t, pt.Err)
	assert.Equal(t, 1, pt.Iterations, "zero hopping must converge in one step")

	z := complex(omega*omega, 0) * complex(1, opts.Delta)
	want := 1 / (z - d)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var w complex128
			if i == j {
				w = want
			}
			assert.InDelta(t, 0, cmplx.Abs(pt.Left.At(i, j)-w), 1e-12, "left (%d,%d)", i, j)
			assert.InDelta(t, 0, cmplx.Abs(pt.Right.At(i, j)-w), 1e-12, "right (%d,%d)", i, j)
		}
	}
}

// TestSweep_IterationCap forces non-convergence with a hopping far outside
// the contraction regime and a tight iteration cap: the point must report
// ErrNotConverged, not loop forever or return a silent wrong answer.
func TestSweep_IterationCap(t *testing.T) {
	left := uniformLead(1, 0, 10, 1)
	right := uniformLead(1, 0, 10, 1)

	opts := green.DefaultOptions()
	opts.MaxIterations = 3

	res, err := green.Sweep(left, right, 1.0, 1.0, 1, opts)
	require.NoError(t, err, "the sweep itself must complete")

	pt := res[0].Points[0]
	require.Error(t, pt.Err)
	assert.ErrorIs(t, pt.Err, green.ErrNotConverged)
	assert.Nil(t, pt.Left)
	assert.Nil(t, pt.Right)

	var pe *green.PointError
	require.ErrorAs(t, pt.Err, &pe)
	assert.Equal(t, 0, pe.KIndex)
	assert.Equal(t, 1.0, pe.Omega)
}

// TestSweep_SingularSurfaced distinguishes numerical failure from
// non-convergence: Hsn chosen to zero out e on the first step must surface
// cmatrix.ErrSingular with the point's coordinates.
func TestSweep_SingularSurfaced(t *testing.T) {
	const omega = 2.0
	opts := green.DefaultOptions()

	// Hsn = Z makes e = Z − Hsn exactly zero.
	zDiag := complex(omega*omega, 0) * complex(1, opts.Delta)
	left := uniformLead(2, zDiag, 1, 1)
	right := uniformLead(2, zDiag, 1, 1)

	res, err := green.Sweep(left, right, omega, omega, 1, opts)
	require.NoError(t, err)

	pt := res[0].Points[0]
	require.Error(t, pt.Err)
	assert.ErrorIs(t, pt.Err, cmatrix.ErrSingular)
	assert.NotErrorIs(t, pt.Err, green.ErrNotConverged)
}

// TestSweep_FailureIsolation runs two wavevectors, one doomed and one
// healthy; the healthy point must come back intact.
func TestSweep_FailureIsolation(t *testing.T) {
	healthy := diagBlock(1, 0.5, 0)
	doomed := diagBlock(1, 0, 10)

	mixed := green.Lead{
		Bulk:    []fourier.Block{healthy, doomed},
		Surface: []fourier.Block{healthy, doomed},
	}

	opts := green.DefaultOptions()
	opts.MaxIterations = 3
	opts.Workers = 2

	res, err := green.Sweep(mixed, mixed, 1.0, 1.0, 1, opts)
	require.NoError(t, err)

	require.NoError(t, res[0].Points[0].Err, "healthy point must survive")
	assert.NotNil(t, res[0].Points[0].Left)
	assert.ErrorIs(t, res[0].Points[1].Err, green.ErrNotConverged)
	assert.Len(t, res[0].Failed(), 1)
}

// TestSweep_FrequencyOrdering checks the sweep covers the requested range
// inclusively and keys results by frequency sample.
func TestSweep_FrequencyOrdering(t *testing.T) {
	left := uniformLead(1, 0.5, 0, 1)
	right := uniformLead(1, 0.5, 0, 1)

	res, err := green.Sweep(left, right, 1.0, 3.0, 5, green.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res, 5)

	want := []float64{1.0, 1.5, 2.0, 2.5, 3.0}
	for i, r := range res {
		assert.InDelta(t, want[i], r.Omega, 1e-15)
	}
}

// TestSweep_Validation covers the sweep precondition sentinels.
func TestSweep_Validation(t *testing.T) {
	lead := uniformLead(1, 0.5, 0, 2)
	opts := green.DefaultOptions()

	_, err := green.Sweep(green.Lead{}, lead, 1, 2, 2, opts)
	assert.ErrorIs(t, err, green.ErrEmptyLead)

	short := green.Lead{Bulk: lead.Bulk, Surface: lead.Surface[:1]}
	_, err = green.Sweep(short, lead, 1, 2, 2, opts)
	assert.ErrorIs(t, err, green.ErrLeadMismatch)

	_, err = green.Sweep(lead, uniformLead(1, 0.5, 0, 3), 1, 2, 2, opts)
	assert.ErrorIs(t, err, green.ErrLeadMismatch)

	bad := opts
	bad.Delta = 0
	_, err = green.Sweep(lead, lead, 1, 2, 2, bad)
	assert.ErrorIs(t, err, green.ErrBadBroadening)

	_, err = green.Sweep(lead, lead, 3, 1, 2, opts)
	assert.ErrorIs(t, err, green.ErrBadSweep)

	_, err = green.Sweep(lead, lead, 1, 2, 0, opts)
	assert.ErrorIs(t, err, green.ErrBadSweep)
}

// TestSweep_DimensionMismatch verifies degenerate block dimensions are
// rejected up front instead of panicking inside a worker goroutine.
func TestSweep_DimensionMismatch(t *testing.T) {
	opts := green.DefaultOptions()

	// Two leads of different block dimension; Z is sized once per point,
	// so this must fail before any task runs.
	_, err := green.Sweep(uniformLead(2, 0.5, 0, 1), uniformLead(3, 0.5, 0, 1), 1, 1, 1, opts)
	assert.ErrorIs(t, err, green.ErrLeadMismatch)

	// One lead mixing dimensions across its own wavevector grid.
	mixed := green.Lead{
		Bulk:    []fourier.Block{diagBlock(2, 0.5, 0), diagBlock(3, 0.5, 0)},
		Surface: []fourier.Block{diagBlock(2, 0.5, 0), diagBlock(3, 0.5, 0)},
	}
	_, err = green.Sweep(mixed, mixed, 1, 1, 1, opts)
	assert.ErrorIs(t, err, green.ErrLeadMismatch)

	// Hsn and Hopping disagreeing inside one block.
	lop := diagBlock(2, 0.5, 0)
	lop.Hopping = cmatrix.Identity(3)
	lopsided := green.Lead{Bulk: []fourier.Block{lop}, Surface: []fourier.Block{lop}}
	_, err = green.Sweep(lopsided, lopsided, 1, 1, 1, opts)
	assert.ErrorIs(t, err, green.ErrLeadMismatch)

	// A block with a nil matrix is malformed input, not a crash.
	hole := diagBlock(2, 0.5, 0)
	hole.Hsn = nil
	holed := green.Lead{Bulk: []fourier.Block{hole}, Surface: []fourier.Block{hole}}
	_, err = green.Sweep(holed, holed, 1, 1, 1, opts)
	assert.ErrorIs(t, err, green.ErrLeadMismatch)
}

// TestSweep_FailedPointIsBare checks a failed point carries only its
// coordinates and error, with no matrices and no leftover iteration count
// from the lead that did converge.
func TestSweep_FailedPointIsBare(t *testing.T) {
	left := uniformLead(1, 0.5, 0, 1)
	right := uniformLead(1, 0, 10, 1)

	opts := green.DefaultOptions()
	opts.MaxIterations = 3

	res, err := green.Sweep(left, right, 1.0, 1.0, 1, opts)
	require.NoError(t, err)

	pt := res[0].Points[0]
	require.ErrorIs(t, pt.Err, green.ErrNotConverged)
	assert.Nil(t, pt.Left)
	assert.Nil(t, pt.Right)
	assert.Zero(t, pt.Iterations)
}

// TestSweep_ParallelMatchesSerial runs the same sweep with one worker and
// with many; the task decomposition must not change any result.
func TestSweep_ParallelMatchesSerial(t *testing.T) {
	lead := green.Lead{}
	for k := 0; k < 4; k++ {
		b := diagBlock(2, complex(0.1*float64(k+1), 0), 0.02)
		lead.Bulk = append(lead.Bulk, b)
		lead.Surface = append(lead.Surface, b)
	}

	serialOpts := green.DefaultOptions()
	serialOpts.Workers = 1
	parallelOpts := green.DefaultOptions()
	parallelOpts.Workers = 8

	serial, err := green.Sweep(lead, lead, 1.0, 2.0, 3, serialOpts)
	require.NoError(t, err)
	parallel, err := green.Sweep(lead, lead, 1.0, 2.0, 3, parallelOpts)
	require.NoError(t, err)

	for iw := range serial {
		for ik := range serial[iw].Points {
			sp, pp := serial[iw].Points[ik], parallel[iw].Points[ik]
			require.NoError(t, sp.Err)
			require.NoError(t, pp.Err)
			assert.Equal(t, sp.Iterations, pp.Iterations)
			for i := 0; i < sp.Left.Rows(); i++ {
				for j := 0; j < sp.Left.Cols(); j++ {
					assert.Equal(t, sp.Left.At(i, j), pp.Left.At(i, j))
					assert.Equal(t, sp.Right.At(i, j), pp.Right.At(i, j))
				}
			}
		}
	}
}

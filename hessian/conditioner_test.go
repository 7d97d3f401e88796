package hessian_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/openkapitza/kapitza/hessian"
)

// noisyMatrix builds an n×n matrix that is symmetric up to a small noise
// term, the way numerically dumped Hessians arrive.
func noisyMatrix(n int, rng *rand.Rand) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := rng.NormFloat64()
			m.Set(i, j, v)
			m.Set(j, i, v+1e-9*rng.NormFloat64())
		}
	}

	return m
}

// TestSymmetrize_Exact verifies the result is exactly symmetric.
func TestSymmetrize_Exact(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h, err := hessian.Symmetrize(noisyMatrix(12, rng))
	require.NoError(t, err)

	n, _ := h.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, h.At(i, j), h.At(j, i), "entry (%d,%d)", i, j)
		}
	}
}

// TestSymmetrize_Idempotent verifies Symmetrize∘Symmetrize == Symmetrize.
func TestSymmetrize_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	once, err := hessian.Symmetrize(noisyMatrix(9, rng))
	require.NoError(t, err)
	twice, err := hessian.Symmetrize(once)
	require.NoError(t, err)

	assert.True(t, mat.Equal(once, twice), "second application must be a no-op")
}

// TestSymmetrize_NonSquare rejects rectangular input.
func TestSymmetrize_NonSquare(t *testing.T) {
	_, err := hessian.Symmetrize(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, hessian.ErrNotSquare)
}

// TestLatticeConstant divides extents by [rx, ry, 2·rz] and converts units.
func TestLatticeConstant(t *testing.T) {
	lc, err := hessian.LatticeConstant([3]float64{10, 20, 60}, [3]int{2, 4, 3})
	require.NoError(t, err)

	assert.InDelta(t, 5e-10, lc[0], 1e-24)
	assert.InDelta(t, 5e-10, lc[1], 1e-24)
	assert.InDelta(t, 1e-09, lc[2], 1e-24)
}

// TestLatticeConstant_BadRep rejects non-positive replication counts.
func TestLatticeConstant_BadRep(t *testing.T) {
	_, err := hessian.LatticeConstant([3]float64{1, 1, 1}, [3]int{0, 1, 1})
	assert.ErrorIs(t, err, hessian.ErrBadReplication)
}

// syntheticCrystal builds a coordinate table for rep=[rx,ry,rz] with natm
// atoms per cell, matching the flat cell ordering of the simulation dump.
func syntheticCrystal(t *testing.T, natm int, rep [3]int) *hessian.Crystal {
	t.Helper()
	cells := rep[0] * rep[1] * 2 * rep[2]
	pts := mat.NewDense(cells*natm, 6, nil)
	for cell := 0; cell < cells; cell++ {
		for a := 0; a < natm; a++ {
			row := cell*natm + a
			pts.Set(row, 0, float64(row+1)) // atom id
			pts.Set(row, 1, 1)              // type
			pts.Set(row, 3, float64(cell))
			pts.Set(row, 4, float64(cell)*2)
			pts.Set(row, 5, float64(cell)*3+float64(a)*0.1)
		}
	}

	c, err := hessian.NewCrystal(pts, natm)
	require.NoError(t, err)

	return c
}

// TestNewCrystal_LatticePoints checks the every-natm-th-row sampling and the
// first-atom offset subtraction.
func TestNewCrystal_LatticePoints(t *testing.T) {
	c := syntheticCrystal(t, 2, [3]int{1, 1, 2})

	rows, cols := c.LatticePoints.Dims()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 0.0, c.LatticePoints.At(0, 0))
	assert.Equal(t, 3.0, c.LatticePoints.At(3, 0))
	assert.Equal(t, 9.0, c.LatticePoints.At(3, 2))
}

// TestMitigatePeriodicEffect_Dimensions verifies the conditioning shrink:
// for rep=[r0,r1,r2] and natm=m the output has 3·m·(r0·r1·2·r2 − 2·r0·r1)
// rows and the lattice-point count matches the block count.
func TestMitigatePeriodicEffect_Dimensions(t *testing.T) {
	natm := 2
	rep := [3]int{2, 2, 3}
	c := syntheticCrystal(t, natm, rep)

	cells := rep[0] * rep[1] * 2 * rep[2]
	dim := 3 * natm * cells
	h := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			h.Set(i, j, float64(i*dim+j))
		}
	}

	cond, err := hessian.MitigatePeriodicEffect(h, c, natm, rep, [3]float64{1e-10, 1e-10, 2e-10})
	require.NoError(t, err)

	wantDim := 3 * natm * (cells - 2*rep[0]*rep[1])
	gotRows, gotCols := cond.Hessian.Dims()
	assert.Equal(t, wantDim, gotRows)
	assert.Equal(t, wantDim, gotCols)

	latRows, _ := cond.LatticePoints.Dims()
	assert.Equal(t, wantDim/(3*natm), latRows)
}

// TestMitigatePeriodicEffect_KeepsInterior checks that the first surviving
// Hessian entry is the first interior block's entry, not the edge layer's.
func TestMitigatePeriodicEffect_KeepsInterior(t *testing.T) {
	natm := 1
	rep := [3]int{1, 1, 2}
	c := syntheticCrystal(t, natm, rep)

	cells := 2 * rep[2] // 4 layers along z
	dim := 3 * natm * cells
	h := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			h.Set(i, j, float64(100*i+j))
		}
	}

	cond, err := hessian.MitigatePeriodicEffect(h, c, natm, rep, [3]float64{})
	require.NoError(t, err)

	// Layers 0 and 3 are edges; the survivor starts at block row/col 1.
	blockDim := 3 * natm
	assert.Equal(t, h.At(blockDim, blockDim), cond.Hessian.At(0, 0))
	// Lattice point of the first survivor is cell index 1.
	assert.Equal(t, 1.0, cond.LatticePoints.At(0, 0))
}

// TestMitigatePeriodicEffect_BadInput covers the validation sentinels.
func TestMitigatePeriodicEffect_BadInput(t *testing.T) {
	c := syntheticCrystal(t, 1, [3]int{1, 1, 2})

	_, err := hessian.MitigatePeriodicEffect(mat.NewDense(12, 12, nil), c, 1, [3]int{1, 1, 1}, [3]float64{})
	assert.ErrorIs(t, err, hessian.ErrBadReplication)

	_, err = hessian.MitigatePeriodicEffect(mat.NewDense(9, 9, nil), c, 1, [3]int{1, 1, 2}, [3]float64{})
	assert.ErrorIs(t, err, hessian.ErrDimensionMismatch)

	_, err = hessian.MitigatePeriodicEffect(mat.NewDense(12, 12, nil), c, 0, [3]int{1, 1, 2}, [3]float64{})
	assert.ErrorIs(t, err, hessian.ErrBadAtomCount)
}

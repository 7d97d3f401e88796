package hessian

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Symmetrize returns an exactly symmetric copy of h: the upper and lower
// triangles are averaged, then the averaged upper triangle is mirrored onto
// the lower one. Applying Symmetrize twice yields the same matrix as once.
func Symmetrize(h *mat.Dense) (*mat.Dense, error) {
	n, c := h.Dims()
	if n != c {
		return nil, ErrNotSquare
	}

	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, h.At(i, i))
		for j := i + 1; j < n; j++ {
			s := (h.At(i, j) + h.At(j, i)) / 2
			out.Set(i, j, s)
			out.Set(j, i, s)
		}
	}

	return out, nil
}

// LatticeConstant derives the physical unit-cell spacings in meters from the
// box extents (angstrom) and the per-lead replication counts. The z extent
// spans two unit cells per replica, hence the doubled divisor.
func LatticeConstant(extents [3]float64, rep [3]int) ([3]float64, error) {
	if rep[0] < 1 || rep[1] < 1 || rep[2] < 1 {
		return [3]float64{}, ErrBadReplication
	}

	div := [3]float64{float64(rep[0]), float64(rep[1]), float64(2 * rep[2])}
	var lc [3]float64
	for k := 0; k < 3; k++ {
		lc[k] = extents[k] / div[k] * AngstromToMeter
	}

	return lc, nil
}

// MitigatePeriodicEffect removes the first and last unit-cell layer along z
// (periodic self-image artifacts) from the lattice points and the matching
// block rows/columns from the Hessian. Doomed entries are marked non-finite
// first, then compacted, the same transient-mask lifecycle the lattice data
// model promises.
func MitigatePeriodicEffect(h *mat.Dense, c *Crystal, natmPerUnitCell int, rep [3]int, latticeConstant [3]float64) (*Conditioned, error) {
	if natmPerUnitCell < 1 {
		return nil, ErrBadAtomCount
	}
	if rep[0] < 1 || rep[1] < 1 || rep[2] < 2 {
		return nil, ErrBadReplication
	}
	n, cols := h.Dims()
	if n != cols {
		return nil, ErrNotSquare
	}

	nLat, _ := c.LatticePoints.Dims()
	blockDim := 3 * natmPerUnitCell
	if n != blockDim*nLat || nLat != rep[0]*rep[1]*2*rep[2] {
		return nil, ErrDimensionMismatch
	}

	stride := 2 * rep[2]
	masked := func(b int) bool { m := b % stride; return m == 0 || m == stride-1 }

	// Mark doomed lattice points non-finite, then compact.
	lat := mat.DenseCopyOf(c.LatticePoints)
	inf := math.Inf(1)
	for b := 0; b < nLat; b++ {
		if masked(b) {
			for k := 0; k < 3; k++ {
				lat.Set(b, k, inf)
			}
		}
	}
	keptLat := compactFiniteRows(lat)

	// Mask matching Hessian block rows and columns at the same stride.
	work := mat.DenseCopyOf(h)
	for b := 0; b < nLat; b++ {
		if !masked(b) {
			continue
		}
		for r := b * blockDim; r < (b+1)*blockDim; r++ {
			for j := 0; j < n; j++ {
				work.Set(r, j, inf)
				work.Set(j, r, inf)
			}
		}
	}

	// Row compaction, then column compaction on the residual.
	rowKept := compactRows(work)
	hsn := compactCols(rowKept)

	return &Conditioned{Hessian: hsn, LatticePoints: keptLat, LatticeConstant: latticeConstant}, nil
}

// compactFiniteRows drops rows containing any non-finite entry.
func compactFiniteRows(m *mat.Dense) *mat.Dense {
	rows, cols := m.Dims()
	var kept []int
	for i := 0; i < rows; i++ {
		finite := true
		for j := 0; j < cols; j++ {
			if math.IsInf(m.At(i, j), 0) || math.IsNaN(m.At(i, j)) {
				finite = false

				break
			}
		}
		if finite {
			kept = append(kept, i)
		}
	}

	out := mat.NewDense(len(kept), cols, nil)
	for oi, i := range kept {
		for j := 0; j < cols; j++ {
			out.Set(oi, j, m.At(i, j))
		}
	}

	return out
}

// compactRows drops rows that are entirely non-finite.
func compactRows(m *mat.Dense) *mat.Dense {
	rows, cols := m.Dims()
	var kept []int
	for i := 0; i < rows; i++ {
		allInf := true
		for j := 0; j < cols; j++ {
			if !math.IsInf(m.At(i, j), 0) {
				allInf = false

				break
			}
		}
		if !allInf {
			kept = append(kept, i)
		}
	}

	out := mat.NewDense(len(kept), cols, nil)
	for oi, i := range kept {
		for j := 0; j < cols; j++ {
			out.Set(oi, j, m.At(i, j))
		}
	}

	return out
}

// compactCols drops columns that are entirely non-finite.
func compactCols(m *mat.Dense) *mat.Dense {
	rows, cols := m.Dims()
	var kept []int
	for j := 0; j < cols; j++ {
		allInf := true
		for i := 0; i < rows; i++ {
			if !math.IsInf(m.At(i, j), 0) {
				allInf = false

				break
			}
		}
		if !allInf {
			kept = append(kept, j)
		}
	}

	out := mat.NewDense(rows, len(kept), nil)
	for i := 0; i < rows; i++ {
		for oj, j := range kept {
			out.Set(i, oj, m.At(i, j))
		}
	}

	return out
}

package hessian

import "gonum.org/v1/gonum/mat"

// AngstromToMeter converts the simulation length unit to meters.
const AngstromToMeter = 1e-10

// positionCol is the first coordinate column in the raw crystal table.
const positionCol = 3

// Crystal pairs the raw per-atom unwrapped positions with the per-unit-cell
// lattice displacement vectors derived from them.
type Crystal struct {
	// Points holds the raw coordinate table, one row per atom; unwrapped
	// positions sit at columns 3..5.
	Points *mat.Dense

	// LatticePoints holds one 3-vector per unit cell: the position of the
	// cell's first atom relative to the very first atom.
	LatticePoints *mat.Dense
}

// Conditioned is the output of MitigatePeriodicEffect: the edge-compacted
// Hessian, the surviving lattice points and the physical lattice constant.
// It is immutable by convention once returned.
type Conditioned struct {
	Hessian         *mat.Dense
	LatticePoints   *mat.Dense
	LatticeConstant [3]float64
}

// NewCrystal derives lattice displacement vectors from the raw coordinate
// table by sampling every natmPerUnitCell-th row and subtracting the first
// atom's position.
func NewCrystal(points *mat.Dense, natmPerUnitCell int) (*Crystal, error) {
	if natmPerUnitCell < 1 {
		return nil, ErrBadAtomCount
	}
	rows, cols := points.Dims()
	if rows < 1 || cols < positionCol+3 {
		return nil, ErrBadCrystal
	}

	nCells := (rows + natmPerUnitCell - 1) / natmPerUnitCell
	lattice := mat.NewDense(nCells, 3, nil)
	for i := 0; i < nCells; i++ {
		row := i * natmPerUnitCell
		for k := 0; k < 3; k++ {
			lattice.Set(i, k, points.At(row, positionCol+k)-points.At(0, positionCol+k))
		}
	}

	return &Crystal{Points: points, LatticePoints: lattice}, nil
}

package fourier

import (
	"math"
	"math/cmplx"

	"github.com/openkapitza/kapitza/blocks"
	"github.com/openkapitza/kapitza/cmatrix"
)

// displacements holds the five fixed transverse displacement vectors in
// stencil order, matching BlockSet keys H0..H4 and T1..T4 (the H0 slot is
// the zero vector, so its phase is always 1).
var displacements = [5][2]float64{{0, 0}, {0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Wavevectors generates the flattened n×n transverse sampling grid over
// [−√2·π/L, +√2·π/L], inclusive on both ends. For n = 1 the endpoints
// collapse to the single lower-corner point.
func Wavevectors(periodicityLength float64, numKpoints int) ([]Wavevector, error) {
	if periodicityLength <= 0 || math.IsInf(periodicityLength, 0) || math.IsNaN(periodicityLength) {
		return nil, ErrBadPeriodicity
	}
	if numKpoints < 1 {
		return nil, ErrBadSampleCount
	}

	kMax := math.Sqrt2 * math.Pi / periodicityLength
	points := linspace(-kMax, kMax, numKpoints)

	grid := make([]Wavevector, 0, numKpoints*numKpoints)
	for i := 0; i < numKpoints; i++ {
		for j := 0; j < numKpoints; j++ {
			grid = append(grid, Wavevector{K1: points[i], K2: points[j]})
		}
	}

	return grid, nil
}

// Transform combines a real-space BlockSet with plane-wave phase factors to
// produce the k-resolved on-site and hopping blocks for every wavevector in
// the grid, addressed by the wavevector's flat index.
func Transform(bs *blocks.BlockSet, grid []Wavevector, periodicityLength float64, opts Options) ([]Block, error) {
	if bs == nil {
		return nil, ErrNilBlockSet
	}
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}
	if periodicityLength <= 0 || math.IsInf(periodicityLength, 0) || math.IsNaN(periodicityLength) {
		return nil, ErrBadPeriodicity
	}
	sign := float64(opts.Sign)
	if sign == 0 {
		sign = float64(PhasePlus)
	}

	// Lift the real blocks once; the per-k work is then scalar phases and
	// complex AXPY accumulation.
	onsite := bs.OnSite()
	hopping := bs.Hopping()
	var cOnsite [5]*cmatrix.Dense
	var cHopping [4]*cmatrix.Dense
	for m := 0; m < 5; m++ {
		cOnsite[m] = cmatrix.FromReal(onsite[m])
	}
	for m := 0; m < 4; m++ {
		cHopping[m] = cmatrix.FromReal(hopping[m])
	}

	out := make([]Block, len(grid))
	for p, k := range grid {
		var phase [5]complex128
		for m := 0; m < 5; m++ {
			dot := displacements[m][0]*k.K1 + displacements[m][1]*k.K2

			phase[m] = cmplx.Exp(complex(0, sign*periodicityLength*dot))
		}

		hsn := cOnsite[0].Clone() // H0 carries phase 1 by construction
		for m := 1; m < 5; m++ {
			hsn = cmatrix.Add(hsn, cmatrix.Scale(phase[m], cOnsite[m]))
		}

		hop := cmatrix.Scale(phase[1], cHopping[0])
		for m := 2; m < 5; m++ {
			hop = cmatrix.Add(hop, cmatrix.Scale(phase[m], cHopping[m-1]))
		}

		out[p] = Block{Hsn: hsn, Hopping: hop, Wavevector: k}
	}

	return out, nil
}

// linspace returns n points spanning [lo, hi] inclusive; a single sample
// collapses to lo.
func linspace(lo, hi float64, n int) []float64 {
	pts := make([]float64, n)
	if n == 1 {
		pts[0] = lo

		return pts
	}
	step := (hi - lo) / float64(n-1)
	for i := range pts {
		pts[i] = lo + float64(i)*step
	}
	// Pin the last endpoint exactly.
	pts[n-1] = hi

	return pts
}

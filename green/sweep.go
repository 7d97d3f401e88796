// SPDX-License-Identifier: MIT

package green

import (
	"runtime"
	"sync"
)

// Sweep computes the surface Green's functions of both leads over the
// frequency range [omegaMin, omegaMax] sampled at omegaNum points, for every
// wavevector the leads carry. omegaMin == omegaMax is legal and evaluates a
// single frequency.
//
// Tasks are independent (wavevector, frequency) pairs dispatched to a fixed
// worker pool; each failed task records its error in its own Point and the
// sweep always runs to completion, so partial results remain usable.
func Sweep(left, right Lead, omegaMin, omegaMax float64, omegaNum int, opts Options) ([]Result, error) {
	if err := validateSweep(left, right, omegaMin, omegaMax, omegaNum, opts); err != nil {
		return nil, err
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}
	if opts.MaxIterations < 1 {
		opts.MaxIterations = DefaultMaxIterations
	}

	omegas := linspace(omegaMin, omegaMax, omegaNum)
	nk := len(left.Bulk)

	results := make([]Result, omegaNum)
	for iw, w := range omegas {
		results[iw] = Result{Omega: w, Points: make([]Point, nk)}
	}

	type task struct{ iw, ik int }
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if total := omegaNum * nk; workers > total {
		workers = total
	}

	jobs := make(chan task)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for tk := range jobs {
				// Each slot is written by exactly one task; no locks needed.
				results[tk.iw].Points[tk.ik] = solvePoint(left, right, tk.ik, omegas[tk.iw], opts)
			}
		}()
	}

	for iw := range omegas {
		for ik := 0; ik < nk; ik++ {
			jobs <- task{iw: iw, ik: ik}
		}
	}
	close(jobs)
	wg.Wait()

	return results, nil
}

// Failed returns the points of r that carry an error.
func (r Result) Failed() []Point {
	var out []Point
	for _, p := range r.Points {
		if p.Err != nil {
			out = append(out, p)
		}
	}

	return out
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
	pts[n-1] = hi

	return pts
}

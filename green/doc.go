// Package green computes semi-infinite-lead surface Green's functions by an
// iterative decimation (renormalization) of the k-resolved dynamical-matrix
// blocks.
//
// Algorithm Outline (per frequency ω and per wavevector):
//  1. Build Z = ω²·(1 + i·δ)·I with the block dimension of the lead.
//  2. Initialize e_surface = e = Z − Hsn(k); alpha = Hop(k);
//     beta = Hop(k)†.
//  3. Iterate:
//     a = e⁻¹·alpha, b = e⁻¹·beta,
//     e_surface += alpha·b,
//     e += beta·a + alpha·b,
//     alpha ← alpha·a, beta ← beta·b.
//  4. Stop when ‖Re(e_surface) − Re(e_surface_prev)‖_F < Tolerance; the
//     previous iterate is an immutable snapshot, never an alias of the
//     matrix being updated. Exceeding MaxIterations is a non-convergence
//     failure, surfaced per point, never silently accepted.
//  5. Derive g_surface = (Z − Hsn − Hop·e_surface⁻¹·Hop†)⁻¹; e_surface
//     plays the role of the effective lead self-energy. With zero hopping
//     the iteration converges in one step and g_surface = (Z − H0)⁻¹.
//
// Concurrency:
//
//	Each (wavevector, frequency) task is pure and owns its intermediate
//	matrices, so Sweep fans the tasks out over a fixed worker pool and
//	collects results into pre-sized slots — no locks, no shared mutable
//	state. A point that fails (non-convergence, singular pivot) records a
//	typed error in its own slot and never poisons sibling points.
//
// Errors:
//
//   - ErrNotConverged: the iteration cap was reached before tolerance.
//   - ErrBadBroadening: δ must be strictly positive to keep Z invertible.
//   - ErrBadSweep: non-finite bounds, omega_min > omega_max, or omega_num < 1.
//   - ErrLeadMismatch: bulk/surface grids of a lead differ in length, or the
//     two leads sample different numbers of wavevectors.
//   - PointError: wraps a per-(k, ω) failure with its coordinates; matches
//     ErrNotConverged or cmatrix.ErrSingular via errors.Is.
package green

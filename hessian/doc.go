// Package hessian conditions a raw force-constant (Hessian) matrix into the
// periodicity-consistent block form the rest of the pipeline consumes.
//
// What:
//
//   - Symmetrize: average the upper/lower triangles and mirror the result,
//     so the output is exactly symmetric regardless of storage noise.
//   - NewCrystal: derive per-unit-cell lattice displacement vectors from the
//     raw unwrapped atom positions.
//   - LatticeConstant: physical unit-cell spacings from the box extents and
//     the replication counts (z repeats two unit cells per replica).
//   - MitigatePeriodicEffect: drop the first and last unit-cell layer along
//     z, whose couplings are self-image artifacts of the periodic wrap, and
//     remove the matching row/column blocks from the Hessian.
//
// Periodic-edge removal marks doomed lattice points non-finite first and
// compacts afterwards, mirroring the replica layout: with stride s = 2·rep_z,
// layers 0 and s-1 (mod s) are artifacts. The Hessian loses the block rows
// and columns at the same stride, scaled by 3·natm_per_unitcell.
//
// Postcondition: the conditioned Hessian has dimension
// 3·natm·(total_cells − 2·rep_x·rep_y) and its block count equals the
// compacted lattice-point count.
//
// Errors:
//
//   - ErrNotSquare: input matrix is not square.
//   - ErrBadReplication: a replication count is out of range (rep_z must be
//     at least 2 or edge removal would consume every layer).
//   - ErrBadAtomCount: natm_per_unitcell < 1.
//   - ErrDimensionMismatch: Hessian size, lattice-point count and
//     replication counts disagree.
package hessian

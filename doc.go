// Package kapitza computes phonon-mediated thermal boundary (Kapitza)
// resistance ingredients across atomistically inhomogeneous interfaces,
// starting from a real-space force-constant (Hessian) matrix produced by
// molecular-dynamics tooling.
//
// 🚀 What is kapitza?
//
//	A deterministic numerical pipeline that brings together:
//		• Hessian conditioning: symmetrization + periodic-edge mitigation
//		• Lattice block decomposition: the fixed 9-offset neighbor stencil
//		• Transverse wavevector sampling and block Fourier transforms
//		• Surface Green's functions via iterative decimation of
//		  semi-infinite leads, with per-point failure isolation
//
// Under the hood, everything is organized as one package per pipeline
// stage:
//
//	lammps/  — input parsing: Hessian dump, coordinate table, box bounds
//	hessian/ — HessianConditioner: symmetrize, lattice constant, edge removal
//	blocks/  — LatticeBlockDecomposer: H0..H4 / T1..T4 stencil extraction
//	fourier/ — wavevector grids + k-resolved dynamical-matrix blocks
//	cmatrix/ — dense complex128 kernels (inversion, conjugate transpose)
//	green/   — the decimation solver and the (k, ω) sweep worker pool
//	heatmap/ — presentation-only 2-D array rendering
//	cmd/     — the kapitza batch CLI, driven by a YAML run description
//
// Data flows strictly forward: lammps → hessian → blocks → fourier →
// green. Every invocation recomputes from the raw inputs; no intermediate
// state is persisted.
package kapitza

// Package fourier samples the transverse reciprocal domain and assembles
// k-resolved dynamical-matrix blocks from a real-space BlockSet.
//
// What:
//
//   - Wavevectors: an n×n grid of (k1, k2) pairs linearly spaced over
//     [−√2·π/L, +√2·π/L] inclusive on both ends, flattened row-major. Each
//     wavevector is addressed downstream by its flat index.
//   - Transform: per wavevector, the phase-weighted sums
//     Hsn(k) = H0 + Σ Hm·pm(k) and Hop(k) = Σ Tm·pm(k), with
//     pm(k) = exp(sign·i·L·dm·k) over the five fixed transverse displacement
//     vectors {(0,0), (0,−1), (0,1), (−1,0), (1,0)}.
//
// Phase sign convention:
//
//	The exponent sign is a reviewable parameter (Options.Sign), not a baked
//	constant. PhasePlus is the default; both signs satisfy the
//	zero-wavevector identities, and the transform applies whichever is
//	chosen uniformly to every block.
//
// Errors:
//
//   - ErrBadPeriodicity: non-positive or non-finite periodicity length.
//   - ErrBadSampleCount: fewer than one sample per axis.
//   - ErrNilBlockSet / ErrEmptyGrid: missing inputs to Transform.
package fourier

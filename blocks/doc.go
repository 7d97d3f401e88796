// Package blocks extracts, from a conditioned Hessian, the nine real-space
// sub-blocks coupling a reference unit-cell block to itself and to its eight
// stencil neighbors.
//
// What:
//
//   - Decompose: slice the Hessian into a BlockSet keyed H0..H4, T1..T4.
//   - The stencil is fixed: H0 is the self coupling, H1..H4 couple along the
//     four signed transverse directions, T1..T4 are the same transverse
//     directions shifted one cell along z — the hopping blocks the
//     decimation recursion consumes.
//
// Index convention:
//
//	Block indices are 1-based triples (i, j, k) in unit-cell space. A triple
//	(a, b, c) maps to the flat block index c + (b·rep_x + a)·2·rep_z after
//	the −1 shift. Block rows are always addressed by the REFERENCE cell's
//	flat index; columns by the neighbor's. An offset that resolves outside
//	[0, total_blocks) is a hard bounds error, never a silent wrap.
//
// Errors:
//
//   - ErrBlockOutOfRange: a stencil neighbor's flat index falls outside the
//     conditioned Hessian.
//   - ErrBadBlockSize: block size < 1.
//   - ErrNotSquare: the conditioned Hessian is not square.
package blocks

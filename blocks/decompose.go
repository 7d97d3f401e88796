package blocks

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrBlockOutOfRange indicates a stencil offset resolved to a flat block
	// index outside the conditioned Hessian.
	ErrBlockOutOfRange = errors.New("blocks: stencil block index out of range")

	// ErrBadBlockSize indicates a non-positive number of unit cells per block.
	ErrBadBlockSize = errors.New("blocks: block size must be ≥ 1")

	// ErrBadAtomCount indicates natm_per_unitcell < 1.
	ErrBadAtomCount = errors.New("blocks: atoms per unit cell must be ≥ 1")

	// ErrBadReplication indicates a replication count < 1, which would
	// corrupt the flat-index arithmetic before the range check runs.
	ErrBadReplication = errors.New("blocks: replication counts must be ≥ 1")

	// ErrNotSquare indicates the conditioned Hessian is not square.
	ErrNotSquare = errors.New("blocks: hessian matrix is not square")
)

// stencil holds the fixed neighbor offsets in unit-cell index space, in
// BlockSet key order: H0, H1..H4, then T1..T4 (transverse ±y, ±x, with the
// T offsets shifted one cell along z).
var stencil = [9][3]int{
	{0, 0, 0},
	{0, -1, 0}, {0, 1, 0}, {-1, 0, 0}, {1, 0, 0},
	{0, -1, 1}, {0, 1, 1}, {-1, 0, 1}, {1, 0, 1},
}

// keyNames mirrors stencil order for error reporting.
var keyNames = [9]string{"H0", "H1", "H2", "H3", "H4", "T1", "T2", "T3", "T4"}

// BlockSet is the nine-member decomposition of a reference unit-cell block.
// H0 is the self coupling, H1..H4 the in-plane neighbor couplings, T1..T4
// the hopping blocks one cell deeper along z. Blocks are copies; treat them
// as read-only.
type BlockSet struct {
	H0, H1, H2, H3, H4 *mat.Dense
	T1, T2, T3, T4     *mat.Dense
}

// OnSite returns H0..H4 in stencil order.
func (bs *BlockSet) OnSite() [5]*mat.Dense {
	return [5]*mat.Dense{bs.H0, bs.H1, bs.H2, bs.H3, bs.H4}
}

// Hopping returns T1..T4 in stencil order.
func (bs *BlockSet) Hopping() [4]*mat.Dense {
	return [4]*mat.Dense{bs.T1, bs.T2, bs.T3, bs.T4}
}

// Decompose slices the nine stencil blocks around the 1-based reference cell
// index (i, j, k) out of the conditioned Hessian. blockSize is the number of
// unit cells aggregated per block; rep carries the post-edge-removal
// replication counts.
func Decompose(hsn *mat.Dense, blockIndex [3]int, blockSize, natmPerUnitCell int, rep [3]int) (*BlockSet, error) {
	if blockSize < 1 {
		return nil, ErrBadBlockSize
	}
	if natmPerUnitCell < 1 {
		return nil, ErrBadAtomCount
	}
	if rep[0] < 1 || rep[1] < 1 || rep[2] < 1 {
		return nil, ErrBadReplication
	}
	n, c := hsn.Dims()
	if n != c {
		return nil, ErrNotSquare
	}

	blockDim := 3 * natmPerUnitCell

	// Resolve all nine flat indices up front so a bounds failure reports
	// the offending key before any slicing happens.
	var flat [9]int
	for m, off := range stencil {
		a := blockIndex[0] + off[0] - 1
		b := blockIndex[1] + off[1] - 1
		cc := blockIndex[2] + off[2] - 1
		// A negative flat index must fail here: the historical slicing would
		// wrap it to the far end of the matrix silently.
		idx := cc + (b*rep[0]+a)*2*rep[2]
		if idx < 0 || blockDim*(idx+blockSize) > n {
			return nil, fmt.Errorf("%s: offset %v of block %v resolves to %d: %w",
				keyNames[m], off, blockIndex, idx, ErrBlockOutOfRange)
		}
		flat[m] = idx
	}

	// Rows by the reference index, columns by each neighbor's.
	r0 := blockDim * flat[0]
	r1 := blockDim * (flat[0] + blockSize)
	cut := func(m int) *mat.Dense {
		c0 := blockDim * flat[m]
		c1 := blockDim * (flat[m] + blockSize)

		return mat.DenseCopyOf(hsn.Slice(r0, r1, c0, c1))
	}

	return &BlockSet{
		H0: cut(0), H1: cut(1), H2: cut(2), H3: cut(3), H4: cut(4),
		T1: cut(5), T2: cut(6), T3: cut(7), T4: cut(8),
	}, nil
}

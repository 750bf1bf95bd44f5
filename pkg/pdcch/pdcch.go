// Package pdcch allocates the REGs that carry Downlink Control Information,
// 36.211 §6.8.5: for each candidate CFI the remaining unassigned REGs are
// collected, run through a 32-column block interleaver plus a cell-ID
// cyclic shift, and truncated to a multiple of 9 (one CCE).
package pdcch

import (
	"github.com/ltestack/ctrlregs/pkg/cellcfg"
	"github.com/ltestack/ctrlregs/pkg/regtable"
)

// NumCols is the fixed column count of the block interleaver.
const NumCols = 32

// RegsPerCCE is the REG count of one Control Channel Element.
const RegsPerCCE = 9

// perm is the 36.211 §6.8.5 bit-reversal-style column permutation.
var perm = [NumCols]int{
	1, 17, 9, 25, 5, 21, 13, 29, 3, 19, 11, 27, 7, 23, 15, 31,
	0, 16, 8, 24, 4, 20, 12, 28, 2, 18, 10, 26, 6, 22, 14, 30,
}

// Channel holds the three precomputed PDCCH REG lists, indexed by
// CFI-1 (CFI ranges 1..3).
type Channel struct {
	ByCFI [3][]int
}

// nofCtrlSymbols returns N_ctrl(cfi), the number of leading OFDM symbols
// PDCCH may use for the given CFI and PRB count.
func nofCtrlSymbols(cfi, numPRB int) int {
	if numPRB < 10 {
		return cfi + 2
	}
	return cfi + 1
}

// interleave applies the 36.211 §6.8.5 block interleaver and cyclic shift
// to regs (the collected, still-in-table-order REG indices for one CFI),
// returning the permuted index list truncated to a multiple of RegsPerCCE.
//
// The interleaver is read, not written, in shifted order: visiting
// (column, row) cells in order with a counter k that advances on every
// non-dummy cell, the cell's destination slot is dst = row*NumCols +
// perm[col] - d, and the REG placed there is regs[(k-cellID) mod m].
func interleave(regs []int, cellID int) []int {
	m := len(regs)
	if m == 0 {
		return nil
	}

	rows := (m-1)/NumCols + 1
	d := NumCols*rows - m
	if d < 0 {
		d = 0
	}

	out := make([]int, m)
	k := 0
	for col := 0; col < NumCols; col++ {
		for row := 0; row < rows; row++ {
			cell := row*NumCols + perm[col]
			if cell < d {
				continue
			}
			dst := cell - d
			kp := (k - cellID) % m
			if kp < 0 {
				kp += m
			}
			out[dst] = regs[kp]
			k++
		}
	}

	final := (m / RegsPerCCE) * RegsPerCCE
	return out[:final]
}

// Allocate computes the three PDCCH REG lists, one per candidate CFI.
func Allocate(table *regtable.Table, params *cellcfg.Params) (*Channel, error) {
	ch := &Channel{}

	for cfiIdx := 0; cfiIdx < 3; cfiIdx++ {
		cfi := cfiIdx + 1
		nctrl := nofCtrlSymbols(cfi, params.NumPRB)

		collected := make([]int, 0, table.Len())
		for idx := range table.Regs {
			reg := &table.Regs[idx]
			if reg.L < nctrl && !reg.Assigned {
				collected = append(collected, idx)
			}
		}

		ch.ByCFI[cfiIdx] = interleave(collected, params.CellID)
	}

	return ch, nil
}

// Put maps payload (4*len(regs) complex samples) onto the grid's PDCCH REGs
// for the given active CFI index (0..2).
func (c *Channel) Put(table *regtable.Table, cfiIdx int, payload []complex128, grid []complex128) int {
	stride := 12 * table.NumPRB
	n := 0
	for i, idx := range c.ByCFI[cfiIdx] {
		n += regtable.Put(&table.Regs[idx], payload[i*4:i*4+4], grid, stride)
	}
	return n
}

// Get reads the grid's PDCCH REGs for the active CFI index into dst.
func (c *Channel) Get(table *regtable.Table, cfiIdx int, grid []complex128, dst []complex128) int {
	stride := 12 * table.NumPRB
	n := 0
	for i, idx := range c.ByCFI[cfiIdx] {
		n += regtable.Get(&table.Regs[idx], grid, dst[i*4:i*4+4], stride)
	}
	return n
}

// NumRegs returns the REG count for the given CFI index (0..2).
func (c *Channel) NumRegs(cfiIdx int) int {
	return len(c.ByCFI[cfiIdx])
}

// Package pcfich allocates the four REGs that carry the Control Format
// Indicator, 36.211 §6.7.4.
package pcfich

import (
	"fmt"

	"github.com/ltestack/ctrlregs/pkg/cellcfg"
	"github.com/ltestack/ctrlregs/pkg/ctrlerr"
	"github.com/ltestack/ctrlregs/pkg/regtable"
)

// NumRegs is the fixed number of REGs PCFICH occupies.
const NumRegs = 4

// NumSymbols is the number of complex samples PCFICH carries (4 REGs x 4 REs).
const NumSymbols = NumRegs * 4

// Channel holds the table indices of the four PCFICH REGs, all in symbol 0.
type Channel struct {
	RegIdx [NumRegs]int
}

// Allocate selects and marks the four PCFICH REGs in table according to the
// cell-ID-dependent formula of 36.211 §6.7.4.
func Allocate(table *regtable.Table, params *cellcfg.Params) (*Channel, error) {
	ch := &Channel{}

	khat := 6 * (params.CellID % (2 * params.NumPRB))
	stride := params.GridStride()

	for i := 0; i < NumRegs; i++ {
		k := (khat + i*(params.NumPRB/2)*6) % stride

		idx, ok := table.Find(k, 0)
		if !ok {
			return nil, fmt.Errorf("%w: no reg at (k=%d,l=0)", ctrlerr.ErrAllocationConflict, k)
		}
		reg := &table.Regs[idx]
		if reg.Assigned {
			return nil, fmt.Errorf("%w: reg at (k=%d,l=0) already assigned", ctrlerr.ErrAllocationConflict, k)
		}
		reg.Assigned = true
		ch.RegIdx[i] = idx
	}

	return ch, nil
}

// Put maps payload (NumSymbols complex samples) onto the grid's PCFICH REGs.
func (c *Channel) Put(table *regtable.Table, payload []complex128, grid []complex128) int {
	stride := 12 * table.NumPRB
	n := 0
	for i, idx := range c.RegIdx {
		n += regtable.Put(&table.Regs[idx], payload[i*4:i*4+4], grid, stride)
	}
	return n
}

// Get reads the grid's PCFICH REGs into dst (NumSymbols complex samples).
func (c *Channel) Get(table *regtable.Table, grid []complex128, dst []complex128) int {
	stride := 12 * table.NumPRB
	n := 0
	for i, idx := range c.RegIdx {
		n += regtable.Get(&table.Regs[idx], grid, dst[i*4:i*4+4], stride)
	}
	return n
}

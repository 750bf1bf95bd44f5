// Package phich allocates the REGs that carry HARQ ACK/NACK indicators,
// 36.211 §6.9.3.
package phich

import (
	"fmt"
	"math"

	"github.com/ltestack/ctrlregs/pkg/cellcfg"
	"github.com/ltestack/ctrlregs/pkg/ctrlerr"
	"github.com/ltestack/ctrlregs/pkg/regtable"
)

// RegsPerUnit is the number of REGs in one PHICH mapping unit.
const RegsPerUnit = 3

// NumSymbols is the number of complex samples one mapping unit carries.
const NumSymbols = RegsPerUnit * 4

// MappingUnit is a group of three REGs carrying one PHICH group's symbols
// (for Normal CP a mapping unit and a PHICH group coincide; for Extended CP
// two groups share one mapping unit, see Channel.unitIndex).
type MappingUnit struct {
	RegIdx [RegsPerUnit]int
}

// Channel holds every PHICH mapping unit for a cell, plus the user-visible
// group count (which, under Extended CP, is double the mapping-unit count;
// see 36.211 §6.9.3 and the design note on keeping these two counts
// distinct rather than mutating one field in place).
type Channel struct {
	Units      []MappingUnit
	NumGroups  int
	cyclicPref cellcfg.CyclicPrefix
}

// numMappingUnits returns M = ceil(Ng * nof_prb / 8).
func numMappingUnits(ng float64, numPRB int) int {
	return int(math.Ceil(ng * float64(numPRB) / 8))
}

// Allocate selects and marks the PHICH REGs according to 36.211 §6.9.3.
func Allocate(table *regtable.Table, params *cellcfg.Params) (*Channel, error) {
	ngFrac, err := params.PhichRes.Ng()
	if err != nil {
		return nil, err
	}
	m := numMappingUnits(ngFrac, params.NumPRB)

	// Bucket the REGs not assigned to PCFICH in symbols 0..2, in the table's
	// existing PRB-then-frequency order.
	var bySymbol [3][]int
	for idx := range table.Regs {
		reg := &table.Regs[idx]
		if reg.L < 3 && !reg.Assigned {
			bySymbol[reg.L] = append(bySymbol[reg.L], idx)
		}
	}

	n0 := len(bySymbol[0])
	if n0 == 0 {
		return nil, fmt.Errorf("%w: no unassigned regs in symbol 0", ctrlerr.ErrAllocationConflict)
	}

	units := make([]MappingUnit, m)
	for mi := 0; mi < m; mi++ {
		for i := 0; i < RegsPerUnit; i++ {
			li := 0
			if params.PhichLen == cellcfg.PhichExtended {
				li = i
			}
			nl := len(bySymbol[li])
			if nl == 0 {
				return nil, fmt.Errorf("%w: no unassigned regs in symbol %d", ctrlerr.ErrAllocationConflict, li)
			}

			ni := ((params.CellID*nl)/n0 + mi + (i*nl)/3) % nl
			idx := bySymbol[li][ni]

			reg := &table.Regs[idx]
			if reg.Assigned {
				return nil, fmt.Errorf("%w: phich reg (k=%d,l=%d) already assigned", ctrlerr.ErrAllocationConflict, reg.K0(), reg.L)
			}
			reg.Assigned = true
			units[mi].RegIdx[i] = idx
		}
	}

	numGroups := m
	if params.CP == cellcfg.CPExtended {
		numGroups = 2 * m
	}

	return &Channel{Units: units, NumGroups: numGroups, cyclicPref: params.CP}, nil
}

// unitIndex maps a user-visible PHICH group index to its mapping unit,
// halving under Extended CP where two groups share one mapping unit.
func (c *Channel) unitIndex(groupIdx int) (int, error) {
	if groupIdx < 0 || groupIdx >= c.NumGroups {
		return 0, fmt.Errorf("%w: group %d, have %d groups", ctrlerr.ErrInvalidGroup, groupIdx, c.NumGroups)
	}
	if c.cyclicPref == cellcfg.CPExtended {
		return groupIdx / 2, nil
	}
	return groupIdx, nil
}

// Add accumulates payload (NumSymbols complex samples) into the grid at the
// REGs of the mapping unit for groupIdx.
func (c *Channel) Add(table *regtable.Table, payload []complex128, grid []complex128, groupIdx int) (int, error) {
	ui, err := c.unitIndex(groupIdx)
	if err != nil {
		return 0, err
	}
	stride := 12 * table.NumPRB
	n := 0
	for i, idx := range c.Units[ui].RegIdx {
		n += regtable.Add(&table.Regs[idx], payload[i*4:i*4+4], grid, stride)
	}
	return n, nil
}

// Get reads the grid's REGs for groupIdx's mapping unit into dst (NumSymbols
// complex samples).
func (c *Channel) Get(table *regtable.Table, grid []complex128, dst []complex128, groupIdx int) (int, error) {
	ui, err := c.unitIndex(groupIdx)
	if err != nil {
		return 0, err
	}
	stride := 12 * table.NumPRB
	n := 0
	for i, idx := range c.Units[ui].RegIdx {
		n += regtable.Get(&table.Regs[idx], grid, dst[i*4:i*4+4], stride)
	}
	return n, nil
}

// Reset zeroes every PHICH RE in the grid across every mapping unit.
func (c *Channel) Reset(table *regtable.Table, grid []complex128) int {
	stride := 12 * table.NumPRB
	n := 0
	for ui := range c.Units {
		for _, idx := range c.Units[ui].RegIdx {
			n += regtable.Reset(&table.Regs[idx], grid, stride)
		}
	}
	return n
}

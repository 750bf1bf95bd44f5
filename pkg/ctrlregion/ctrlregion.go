// Package ctrlregion is the single composite entry point for the control
// channel REG mapping core: it builds the REG Table and all three channel
// allocations once per cell configuration, then exposes per-subframe CFI
// selection and the channel-level mapping operations DSP code calls into.
package ctrlregion

import (
	"fmt"

	"github.com/ltestack/ctrlregs/pkg/cellcfg"
	"github.com/ltestack/ctrlregs/pkg/ctrlerr"
	"github.com/ltestack/ctrlregs/pkg/pcfich"
	"github.com/ltestack/ctrlregs/pkg/pdcch"
	"github.com/ltestack/ctrlregs/pkg/phich"
	"github.com/ltestack/ctrlregs/pkg/regtable"
)

// noCFI marks that SetCFI has not yet been called.
const noCFI = -1

// Region is the fully initialised control-channel state for one cell
// configuration: the REG Table plus the PCFICH, PHICH, and PDCCH
// allocations computed from it.
type Region struct {
	Params *cellcfg.Params
	Table  *regtable.Table
	PCFICH *pcfich.Channel
	PHICH  *phich.Channel
	PDCCH  *pdcch.Channel

	cfiIdx int // index into PDCCH.ByCFI, or noCFI
}

// Init builds the REG Table and runs PCFICH, then PHICH, then PDCCH
// allocation over it, in that fixed order (PHICH must see PCFICH's
// assignments; PDCCH must see both). Partial failure returns an error and
// no Region; there is nothing to release since allocation is table
// mutation plus plain slices, not acquired external resources.
func Init(params *cellcfg.Params) (*Region, error) {
	table, err := regtable.Build(params)
	if err != nil {
		return nil, fmt.Errorf("building reg table: %w", err)
	}

	pc, err := pcfich.Allocate(table, params)
	if err != nil {
		return nil, fmt.Errorf("allocating pcfich: %w", err)
	}

	ph, err := phich.Allocate(table, params)
	if err != nil {
		return nil, fmt.Errorf("allocating phich: %w", err)
	}

	pd, err := pdcch.Allocate(table, params)
	if err != nil {
		return nil, fmt.Errorf("allocating pdcch: %w", err)
	}

	return &Region{
		Params: params,
		Table:  table,
		PCFICH: pc,
		PHICH:  ph,
		PDCCH:  pd,
		cfiIdx: noCFI,
	}, nil
}

// Free releases a Region. The core holds no resources beyond garbage
// collected memory, so this is a no-op kept for symmetry with Init and as a
// seam for a future pooled-arena implementation.
func (r *Region) Free() {}

// SetCFI selects the active Control Format Indicator for the current
// subframe, validating it against the Extended-PHICH minimum control symbol
// requirement (36.211 §6.7 note; if PHICH length is Extended, CFI must be
// at least 2 when nof_prb < 10, else at least 3).
func (r *Region) SetCFI(cfi int) error {
	if cfi < 1 || cfi > 3 {
		return fmt.Errorf("%w: cfi %d must be in [1,3]", ctrlerr.ErrInvalidParameter, cfi)
	}

	if r.Params.PhichLen == cellcfg.PhichExtended {
		minCFI := 3
		if r.Params.NumPRB < 10 {
			minCFI = 2
		}
		if cfi < minCFI {
			return fmt.Errorf("%w: phich length extended requires cfi >= %d, got %d", ctrlerr.ErrPhichLengthConflict, minCFI, cfi)
		}
	}

	r.cfiIdx = cfi - 1
	return nil
}

// Stats summarises the REG Table and channel allocation sizes, the
// Go-native equivalent of the original's regs_*_nregs()/ngroups() accessor
// family.
type Stats struct {
	NumPRB         int
	TotalRegs      int
	PCFICHRegs     int
	PHICHRegs      int
	PHICHGroups    int
	PDCCHRegsByCFI [3]int
}

// Stats returns current table and channel sizes.
func (r *Region) Stats() Stats {
	phichRegs := 0
	for _, u := range r.PHICH.Units {
		phichRegs += len(u.RegIdx)
	}

	var pdcchByCFI [3]int
	for i := 0; i < 3; i++ {
		pdcchByCFI[i] = r.PDCCH.NumRegs(i)
	}

	return Stats{
		NumPRB:         r.Params.NumPRB,
		TotalRegs:      r.Table.Len(),
		PCFICHRegs:     pcfich.NumRegs,
		PHICHRegs:      phichRegs,
		PHICHGroups:    r.PHICH.NumGroups,
		PDCCHRegsByCFI: pdcchByCFI,
	}
}

// PCFICHPut maps payload (pcfich.NumSymbols complex samples) onto the grid.
func (r *Region) PCFICHPut(payload []complex128, grid []complex128) int {
	return r.PCFICH.Put(r.Table, payload, grid)
}

// PCFICHGet reads the grid's PCFICH REGs into dst.
func (r *Region) PCFICHGet(grid []complex128, dst []complex128) int {
	return r.PCFICH.Get(r.Table, grid, dst)
}

// PHICHAdd accumulates payload (phich.NumSymbols complex samples) into the
// grid for the mapping unit backing groupIdx.
func (r *Region) PHICHAdd(payload []complex128, grid []complex128, groupIdx int) (int, error) {
	return r.PHICH.Add(r.Table, payload, grid, groupIdx)
}

// PHICHReset zeroes every PHICH RE in the grid.
func (r *Region) PHICHReset(grid []complex128) int {
	return r.PHICH.Reset(r.Table, grid)
}

// PHICHGet reads the grid's REGs for groupIdx's mapping unit into dst.
func (r *Region) PHICHGet(grid []complex128, dst []complex128, groupIdx int) (int, error) {
	return r.PHICH.Get(r.Table, grid, dst, groupIdx)
}

// PDCCHPut maps payload onto the grid's active-CFI PDCCH REGs. It fails
// with ErrCfiNotSet if SetCFI has not been called.
func (r *Region) PDCCHPut(payload []complex128, grid []complex128) (int, error) {
	if r.cfiIdx == noCFI {
		return 0, fmt.Errorf("%w: pdcch put requires SetCFI", ctrlerr.ErrCfiNotSet)
	}
	return r.PDCCH.Put(r.Table, r.cfiIdx, payload, grid), nil
}

// PDCCHGet reads the grid's active-CFI PDCCH REGs into dst. It fails with
// ErrCfiNotSet if SetCFI has not been called.
func (r *Region) PDCCHGet(grid []complex128, dst []complex128) (int, error) {
	if r.cfiIdx == noCFI {
		return 0, fmt.Errorf("%w: pdcch get requires SetCFI", ctrlerr.ErrCfiNotSet)
	}
	return r.PDCCH.Get(r.Table, r.cfiIdx, grid, dst), nil
}

// PDCCHNumRegs returns the active-CFI PDCCH REG count, or 0 if CFI is unset.
func (r *Region) PDCCHNumRegs() int {
	if r.cfiIdx == noCFI {
		return 0
	}
	return r.PDCCH.NumRegs(r.cfiIdx)
}

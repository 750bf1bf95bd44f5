package regtable

import (
	"fmt"

	"github.com/ltestack/ctrlregs/pkg/cellcfg"
)

// coord locates a REG by its symbol and group anchor (Reg.K0), the key
// PCFICH allocation looks REGs up by.
type coord struct {
	l, k0 int
}

// Table is the ordered, immutable set of every REG in a cell's control
// region (36.211 §6.2.4). REGs are sorted primarily by PRB (low to high);
// within a PRB they follow Build's round-robin walk across the control
// symbols. Only the per-REG Assigned flag may transition
// false -> true after Build returns.
type Table struct {
	Regs     []Reg
	NumPRB   int
	NumPorts int
	CP       cellcfg.CyclicPrefix

	// MaxCtrlSymbols is 4 control symbols if NumPRB < 10, else 3.
	MaxCtrlSymbols int
	// SymbolCount holds n(l), the REG count per PRB for symbol l.
	SymbolCount [4]int

	index map[coord]int
}

// symbolRegCount returns n(l, nof_ports, cp), the number of REGs one PRB
// contributes in OFDM symbol l (36.211 §6.2.4 Table).
func symbolRegCount(l, numPorts int, cp cellcfg.CyclicPrefix) (int, error) {
	switch l {
	case 0:
		return 2, nil
	case 1:
		switch numPorts {
		case 1, 2:
			return 3, nil
		case 4:
			return 2, nil
		default:
			return 0, fmt.Errorf("%w: port count %d", errInvalidPortCount, numPorts)
		}
	case 2:
		return 3, nil
	case 3:
		if cp == cellcfg.CPNormal {
			return 3, nil
		}
		return 2, nil
	default:
		return 0, fmt.Errorf("%w: symbol %d", errInvalidSymbol, l)
	}
}

// buildGroup2 lays out the four data subcarriers of a reference-signal-
// bearing 6-wide group (n(l)=2 case, 36.211 §6.2.4): every position except
// vo and vo+3, in ascending order.
func buildGroup2(base, vo int) [4]int {
	var k [4]int
	j := 0
	for i := 0; i < vo; i++ {
		k[j] = base + i
		j++
	}
	for i := 0; i < 2; i++ {
		k[j] = base + vo + 1 + i
		j++
	}
	for i := 0; j < 4; i++ {
		k[j] = base + vo + 4 + i
		j++
	}
	return k
}

// buildReg constructs the REG at symbol l, the nreg-th group within its
// PRB, given the PRB's base subcarrier and the symbol's per-PRB REG count.
func buildReg(l, nreg, prbBase, maxreg, vo int) (Reg, error) {
	switch maxreg {
	case 3:
		anchor := prbBase + nreg*4
		var k [4]int
		for i := 0; i < 4; i++ {
			k[i] = anchor + i
		}
		return Reg{L: l, K: k, Anchor: anchor}, nil
	case 2:
		anchor := prbBase + nreg*6
		return Reg{L: l, K: buildGroup2(anchor, vo), Anchor: anchor}, nil
	default:
		return Reg{}, fmt.Errorf("%w: %d regs per prb", errInvalidSymbol, maxreg)
	}
}

// Build enumerates the full REG Table for a cell configuration. REGs are
// emitted round-robin across control symbols per PRB: a symbol contributes
// a REG on a round whenever it still has REGs left to emit (n(l)=3 symbols
// emit on all three rounds; n(l)=2 symbols skip the middle round), and the
// walk advances to the next PRB once three rounds complete.
func Build(params *cellcfg.Params) (*Table, error) {
	maxCtrl := params.MaxCtrlSymbols()

	var n [4]int
	total := 0
	for l := 0; l < maxCtrl; l++ {
		c, err := symbolRegCount(l, params.NumPorts, params.CP)
		if err != nil {
			return nil, err
		}
		n[l] = c
		total += params.NumPRB * c
	}

	t := &Table{
		Regs:           make([]Reg, total),
		NumPRB:         params.NumPRB,
		NumPorts:       params.NumPorts,
		CP:             params.CP,
		MaxCtrlSymbols: maxCtrl,
		SymbolCount:    n,
		index:          make(map[coord]int, total),
	}

	vo := params.CellID % 3
	var j [4]int
	i, prb, jmax, k := 0, 0, 0, 0

	for k < total {
		if n[i] == 3 || (n[i] == 2 && jmax != 1) {
			reg, err := buildReg(i, j[i], prb*12, n[i], vo)
			if err != nil {
				return nil, err
			}
			t.Regs[k] = reg
			t.index[coord{l: reg.L, k0: reg.K0()}] = k
			j[i]++
			k++
		}
		i++
		if i == maxCtrl {
			i = 0
			jmax++
		}
		if jmax == 3 {
			prb++
			j = [4]int{}
			jmax = 0
		}
	}

	return t, nil
}

// Find returns the index of the REG whose group anchor (Reg.K0) is k0 in
// symbol l, or false if no such REG exists.
func (t *Table) Find(k0, l int) (int, bool) {
	idx, ok := t.index[coord{l: l, k0: k0}]
	return idx, ok
}

// Len returns the number of REGs in the table.
func (t *Table) Len() int {
	return len(t.Regs)
}

// Package cellcfg holds the immutable cell configuration that every other
// control-channel REG mapping package is parameterised on: cell identity,
// resource-block count, antenna-port count, cyclic-prefix kind, and the
// PHICH length/resource settings from 3GPP TS 36.211.
package cellcfg

import "fmt"

// CyclicPrefix selects the number of OFDM symbols per slot.
type CyclicPrefix int

const (
	CPNormal CyclicPrefix = iota
	CPExtended
)

func (cp CyclicPrefix) String() string {
	if cp == CPExtended {
		return "Extended"
	}
	return "Normal"
}

// PhichLength selects Normal or Extended PHICH duration.
type PhichLength int

const (
	PhichNormal PhichLength = iota
	PhichExtended
)

func (l PhichLength) String() string {
	if l == PhichExtended {
		return "Extended"
	}
	return "Normal"
}

// PhichResource is the PHICH resource fraction Ng from 36.211 Table 6.9-1.
type PhichResource int

const (
	PhichResOneSixth PhichResource = iota
	PhichResOneHalf
	PhichResOne
	PhichResTwo
)

// Ng returns the resource fraction as a float for use in the mapping-unit
// count formula.
func (r PhichResource) Ng() (float64, error) {
	switch r {
	case PhichResOneSixth:
		return 1.0 / 6.0, nil
	case PhichResOneHalf:
		return 0.5, nil
	case PhichResOne:
		return 1.0, nil
	case PhichResTwo:
		return 2.0, nil
	default:
		return 0, fmt.Errorf("%w: phich resource %d", errInvalidPhichResource, r)
	}
}

func (r PhichResource) String() string {
	switch r {
	case PhichResOneSixth:
		return "1/6"
	case PhichResOneHalf:
		return "1/2"
	case PhichResOne:
		return "1"
	case PhichResTwo:
		return "2"
	default:
		return "invalid"
	}
}

// Params is the immutable set of cell parameters the REG Enumerator and
// channel allocators are built from.
type Params struct {
	CellID   int
	NumPRB   int
	NumPorts int
	CP       CyclicPrefix
	PhichLen PhichLength
	PhichRes PhichResource
}

// MaxCellID is the largest valid physical cell identity (3 x 168 groups).
const MaxCellID = 503

// New validates params and returns an immutable Params value.
func New(cellID, numPRB, numPorts int, cp CyclicPrefix, phichLen PhichLength, phichRes PhichResource) (*Params, error) {
	if cellID < 0 || cellID > MaxCellID {
		return nil, fmt.Errorf("%w: cell id %d out of range [0,%d]", errInvalidCellID, cellID, MaxCellID)
	}
	if numPRB <= 0 {
		return nil, fmt.Errorf("%w: prb count %d must be positive", errInvalidPRBCount, numPRB)
	}
	switch numPorts {
	case 1, 2, 4:
	default:
		return nil, fmt.Errorf("%w: port count %d must be 1, 2, or 4", errInvalidPortCount, numPorts)
	}
	if cp != CPNormal && cp != CPExtended {
		return nil, fmt.Errorf("%w: cyclic prefix %d", errInvalidCyclicPrefix, cp)
	}
	if phichLen != PhichNormal && phichLen != PhichExtended {
		return nil, fmt.Errorf("%w: phich length %d", errInvalidPhichLength, phichLen)
	}
	if _, err := phichRes.Ng(); err != nil {
		return nil, err
	}

	return &Params{
		CellID:   cellID,
		NumPRB:   numPRB,
		NumPorts: numPorts,
		CP:       cp,
		PhichLen: phichLen,
		PhichRes: phichRes,
	}, nil
}

// MaxCtrlSymbols returns the maximum number of leading OFDM symbols that may
// carry control-channel REGs for this cell's PRB count (36.211 §6.8.1).
func (p *Params) MaxCtrlSymbols() int {
	if p.NumPRB < 10 {
		return 4
	}
	return 3
}

// GridStride returns the per-symbol subcarrier stride of the resource grid,
// 12 subcarriers per PRB.
func (p *Params) GridStride() int {
	return 12 * p.NumPRB
}

package ctrlregion

import (
	"errors"
	"testing"

	"github.com/ltestack/ctrlregs/pkg/cellcfg"
	"github.com/ltestack/ctrlregs/pkg/ctrlerr"
)

func mustParams(t *testing.T, cellID, numPRB, numPorts int, phichLen cellcfg.PhichLength) *cellcfg.Params {
	t.Helper()
	p, err := cellcfg.New(cellID, numPRB, numPorts, cellcfg.CPNormal, phichLen, cellcfg.PhichResOneSixth)
	if err != nil {
		t.Fatalf("cellcfg.New: %v", err)
	}
	return p
}

func TestInitBuildsAllChannels(t *testing.T) {
	params := mustParams(t, 17, 25, 2, cellcfg.PhichNormal)
	region, err := Init(params)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	if got := len(region.PCFICH.RegIdx); got != 4 {
		t.Errorf("pcfich regs = %d, want 4", got)
	}
	if len(region.PHICH.Units) == 0 {
		t.Error("phich has no mapping units")
	}
	for i := 0; i < 3; i++ {
		if region.PDCCH.NumRegs(i)%9 != 0 {
			t.Errorf("pdcch cfiIdx=%d not a multiple of 9", i)
		}
	}
}

func TestSetCFIValid(t *testing.T) {
	params := mustParams(t, 0, 6, 1, cellcfg.PhichNormal)
	region, err := Init(params)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	for cfi := 1; cfi <= 3; cfi++ {
		if err := region.SetCFI(cfi); err != nil {
			t.Errorf("SetCFI(%d): %v", cfi, err)
		}
	}
	if err := region.SetCFI(0); err == nil {
		t.Error("SetCFI(0) should fail")
	}
	if err := region.SetCFI(4); err == nil {
		t.Error("SetCFI(4) should fail")
	}
}

// Spec §8 scenario 6: set_cfi(1) with phich_len=Extended, nof_prb=50 fails
// with PhichLengthConflict (needs CFI>=3).
func TestSetCFIPhichLengthConflict(t *testing.T) {
	params := mustParams(t, 10, 50, 2, cellcfg.PhichExtended)
	region, err := Init(params)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	err = region.SetCFI(1)
	if err == nil {
		t.Fatal("SetCFI(1) should fail for extended phich length with nof_prb>=10")
	}
	if !errors.Is(err, ctrlerr.ErrPhichLengthConflict) {
		t.Errorf("error = %v, want wrapping ErrPhichLengthConflict", err)
	}

	if err := region.SetCFI(3); err != nil {
		t.Errorf("SetCFI(3) should succeed: %v", err)
	}
}

func TestSetCFIPhichLengthConflictSmallCell(t *testing.T) {
	params := mustParams(t, 10, 6, 1, cellcfg.PhichExtended)
	region, err := Init(params)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := region.SetCFI(1); !errors.Is(err, ctrlerr.ErrPhichLengthConflict) {
		t.Errorf("SetCFI(1) error = %v, want ErrPhichLengthConflict", err)
	}
	if err := region.SetCFI(2); err != nil {
		t.Errorf("SetCFI(2) should succeed for nof_prb<10: %v", err)
	}
}

func TestPDCCHRequiresCFI(t *testing.T) {
	params := mustParams(t, 3, 15, 1, cellcfg.PhichNormal)
	region, err := Init(params)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	grid := make([]complex128, params.GridStride()*params.MaxCtrlSymbols())
	_, err = region.PDCCHPut(make([]complex128, 4), grid)
	if !errors.Is(err, ctrlerr.ErrCfiNotSet) {
		t.Errorf("PDCCHPut before SetCFI error = %v, want ErrCfiNotSet", err)
	}

	_, err = region.PDCCHGet(grid, make([]complex128, 4))
	if !errors.Is(err, ctrlerr.ErrCfiNotSet) {
		t.Errorf("PDCCHGet before SetCFI error = %v, want ErrCfiNotSet", err)
	}
}

func TestFullChannelRoundTrip(t *testing.T) {
	params := mustParams(t, 44, 25, 4, cellcfg.PhichNormal)
	region, err := Init(params)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := region.SetCFI(2); err != nil {
		t.Fatalf("SetCFI: %v", err)
	}

	grid := make([]complex128, params.GridStride()*params.MaxCtrlSymbols())

	pcPayload := make([]complex128, 16)
	for i := range pcPayload {
		pcPayload[i] = complex(float64(i), float64(-i))
	}
	region.PCFICHPut(pcPayload, grid)
	pcGot := make([]complex128, 16)
	region.PCFICHGet(grid, pcGot)
	for i := range pcPayload {
		if pcGot[i] != pcPayload[i] {
			t.Fatalf("pcfich round trip mismatch at %d: got %v want %v", i, pcGot[i], pcPayload[i])
		}
	}

	region.PHICHReset(grid)
	phPayload := make([]complex128, 12)
	for i := range phPayload {
		phPayload[i] = complex(float64(i+1), 0)
	}
	if _, err := region.PHICHAdd(phPayload, grid, 0); err != nil {
		t.Fatalf("PHICHAdd: %v", err)
	}
	phGot := make([]complex128, 12)
	if _, err := region.PHICHGet(grid, phGot, 0); err != nil {
		t.Fatalf("PHICHGet: %v", err)
	}
	for i := range phPayload {
		if phGot[i] != phPayload[i] {
			t.Fatalf("phich round trip mismatch at %d: got %v want %v", i, phGot[i], phPayload[i])
		}
	}

	m := region.PDCCHNumRegs()
	pdPayload := make([]complex128, 4*m)
	for i := range pdPayload {
		pdPayload[i] = complex(float64(i), 1)
	}
	if _, err := region.PDCCHPut(pdPayload, grid); err != nil {
		t.Fatalf("PDCCHPut: %v", err)
	}
	pdGot := make([]complex128, 4*m)
	if _, err := region.PDCCHGet(grid, pdGot); err != nil {
		t.Fatalf("PDCCHGet: %v", err)
	}
	for i := range pdPayload {
		if pdGot[i] != pdPayload[i] {
			t.Fatalf("pdcch round trip mismatch at %d: got %v want %v", i, pdGot[i], pdPayload[i])
		}
	}
}

func TestStats(t *testing.T) {
	params, err := cellcfg.New(2, 50, 2, cellcfg.CPNormal, cellcfg.PhichNormal, cellcfg.PhichResOne)
	if err != nil {
		t.Fatalf("cellcfg.New: %v", err)
	}
	region, err := Init(params)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	stats := region.Stats()
	if stats.PCFICHRegs != 4 {
		t.Errorf("PCFICHRegs = %d, want 4", stats.PCFICHRegs)
	}
	if stats.PHICHRegs != 21 {
		t.Errorf("PHICHRegs = %d, want 21", stats.PHICHRegs)
	}
	if stats.NumPRB != 50 {
		t.Errorf("NumPRB = %d, want 50", stats.NumPRB)
	}
}

// Package ctrlerr defines the shared error kinds surfaced by the control
// channel REG mapping packages. Callers match against these with errors.Is;
// each producing package wraps one of these sentinels with call-specific
// detail via fmt.Errorf("%w: ...", ...).
package ctrlerr

import "errors"

var (
	// ErrInvalidParameter marks an out-of-range cell ID, PRB count, port
	// count, PHICH resource, PHICH length, or CFI.
	ErrInvalidParameter = errors.New("ctrlregs: invalid parameter")

	// ErrAllocationConflict marks a REG that is already assigned, or a
	// computed (k,l) coordinate missing from the REG table.
	ErrAllocationConflict = errors.New("ctrlregs: allocation conflict")

	// ErrCfiNotSet marks a PDCCH put/get called before SetCFI.
	ErrCfiNotSet = errors.New("ctrlregs: cfi not set")

	// ErrInvalidGroup marks a PHICH operation with an out-of-range group
	// index.
	ErrInvalidGroup = errors.New("ctrlregs: invalid phich group")

	// ErrPhichLengthConflict marks SetCFI called with a CFI below the
	// minimum required by Extended PHICH length.
	ErrPhichLengthConflict = errors.New("ctrlregs: phich length conflict")
)

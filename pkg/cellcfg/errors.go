package cellcfg

import (
	"fmt"

	"github.com/ltestack/ctrlregs/pkg/ctrlerr"
)

var (
	errInvalidCellID        = fmt.Errorf("%w: cell id", ctrlerr.ErrInvalidParameter)
	errInvalidPRBCount      = fmt.Errorf("%w: prb count", ctrlerr.ErrInvalidParameter)
	errInvalidPortCount     = fmt.Errorf("%w: port count", ctrlerr.ErrInvalidParameter)
	errInvalidCyclicPrefix  = fmt.Errorf("%w: cyclic prefix", ctrlerr.ErrInvalidParameter)
	errInvalidPhichLength   = fmt.Errorf("%w: phich length", ctrlerr.ErrInvalidParameter)
	errInvalidPhichResource = fmt.Errorf("%w: phich resource", ctrlerr.ErrInvalidParameter)
)

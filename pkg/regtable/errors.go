package regtable

import (
	"fmt"

	"github.com/ltestack/ctrlregs/pkg/ctrlerr"
)

var (
	errInvalidPortCount = fmt.Errorf("%w: port count", ctrlerr.ErrInvalidParameter)
	errInvalidSymbol    = fmt.Errorf("%w: control symbol", ctrlerr.ErrInvalidParameter)
)

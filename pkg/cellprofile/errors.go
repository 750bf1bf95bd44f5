package cellprofile

import (
	"fmt"

	"github.com/ltestack/ctrlregs/pkg/ctrlerr"
)

var errInvalidField = fmt.Errorf("%w: cell profile field", ctrlerr.ErrInvalidParameter)

package mitosis

import "errors"

// ErrInvalidInput indicates a value outside the defined enumerations, or a
// composition that is not valid for the selected cell type.
var ErrInvalidInput = errors.New("mitosis: invalid input")

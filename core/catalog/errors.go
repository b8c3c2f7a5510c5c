package catalog

import "errors"

// ErrInvalidPrice is returned for a max price that is not a non-negative number.
var ErrInvalidPrice = errors.New("catalog: max price must be a non-negative number")

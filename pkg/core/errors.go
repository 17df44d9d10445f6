package core

import "errors"

// ErrZeroLength is returned when normalizing a vector of zero length
var ErrZeroLength = errors.New("cannot normalize zero-length vector")

package errs

import "errors"

// ErrNotFound signals a missing resource across layers.
var ErrNotFound = errors.New("not found")

package packed

import "errors"

// ErrTruncated indicates the input ends with a single dangling byte, which cannot form a value.
var ErrTruncated = errors.New("insufficient data to form a value")

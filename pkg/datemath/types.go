package datemath

import "errors"

// ErrUnrecognized is returned for expressions the parser has no rule for.
var ErrUnrecognized = errors.New("unrecognized time expression")

const clockLayout = "15:04"

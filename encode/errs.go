package encode

import (
	"errors"
)

// ErrEncode wraps serialization failures, including writes to a
// failing destination.
var ErrEncode = errors.New("encode error")

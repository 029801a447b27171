package parse

import (
	"errors"
)

// ErrParse wraps every failure to turn input into a tree: unreadable
// input, malformed XML, and failed schema validation.
var ErrParse = errors.New("parse error")

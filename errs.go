package xml

import (
	"errors"

	"github.com/signadot/xml-format/go-xml/encode"
	"github.com/signadot/xml-format/go-xml/parse"
)

var (
	// ErrStructure reports a structural invariant violation: a second
	// root, mixing text content with child elements, removing a
	// non-child, or moving a node into its own subtree.
	ErrStructure = errors.New("structure error")

	// ErrAttribute reports a typed read of an absent or empty
	// attribute.
	ErrAttribute = errors.New("no such attribute")

	// ErrConversion reports an attribute whose value cannot be parsed
	// as the requested type.
	ErrConversion = errors.New("conversion error")

	// ErrIO reports a destination that cannot be created or written.
	ErrIO = errors.New("i/o error")

	ErrParse     = parse.ErrParse
	ErrSerialize = encode.ErrEncode
)

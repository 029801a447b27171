package parse

import (
	"github.com/jacoelho/xsd"
)

type parseOpts struct {
	schema       *xsd.Schema
	keepComments bool
	keepProcInst bool
	keepSpace    bool
}

type ParseOption func(*parseOpts)

// ParseSchema validates the raw input against s before the tree is
// built.  A validation failure is reported as ErrParse.
func ParseSchema(s *xsd.Schema) ParseOption {
	return func(o *parseOpts) { o.schema = s }
}

// ParseKeepComments retains comments as comment nodes in the tree.
// By default comments are dropped.
func ParseKeepComments(v bool) ParseOption {
	return func(o *parseOpts) { o.keepComments = v }
}

// ParseKeepProcInst retains processing instructions other than the
// XML declaration as procinst nodes in the tree.  By default they are
// dropped.
func ParseKeepProcInst(v bool) ParseOption {
	return func(o *parseOpts) { o.keepProcInst = v }
}

// ParseKeepSpace retains whitespace-only text between child elements.
// By default such text is treated as layout and dropped.
func ParseKeepSpace(v bool) ParseOption {
	return func(o *parseOpts) { o.keepSpace = v }
}

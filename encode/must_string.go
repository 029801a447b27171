package encode

import (
	"bytes"

	"github.com/signadot/xml-format/go-xml/dom"
)

// MustString encodes node compactly and panics on failure.  Encoding
// to a buffer only fails on malformed trees, so this is safe for
// trees built through the public API.
func MustString(node *dom.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}

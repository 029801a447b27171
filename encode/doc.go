// Package encode serializes dom trees back to XML text.
//
// # Usage
//
//	// compact output
//	err := encode.Encode(node, w)
//
//	// indented output with the XML declaration
//	err := encode.Encode(node, w, encode.EncodeIndent(true), encode.EncodeDecl(true))
//
// Formatted output indents element children by two spaces per level.
// Elements holding character data are always emitted inline, so text
// content survives a format/parse round trip unchanged.
//
// # Related Packages
//
//   - github.com/signadot/xml-format/go-xml/parse - Parse text to dom trees
//   - github.com/signadot/xml-format/go-xml/dom - The tree representation
package encode

// Package xml provides a typed, tree-structured view over parsed XML
// documents.
//
// # Overview
//
// A Document owns the parse/serialize lifecycle and the single root
// element of one XML tree.  A Node is a lightweight handle on one
// element within that tree, exposing navigation, typed attribute
// access and content mutation.  Nodes are materialized lazily by
// navigation and mutation calls and are never cached: visiting the
// same element twice yields two handles on the same storage.
//
// # Building and serializing
//
//	doc := xml.New()
//	root, _ := doc.AddRoot("config")
//	child, _ := root.AddChild("server")
//	child.SetAttribute("port", 8080)
//	child.SetAttribute("tls", true)
//	out, _ := doc.Dump(true)
//
// # Parsing
//
//	doc, err := xml.Load("config.xml", false)
//	if err != nil { ... }
//	for n := range doc.Root().Children() {
//	    port, err := n.IntAttribute("port")
//	    ...
//	}
//
// With the validate flag set, Load validates the input against the
// XSD schema the document references; see Parse.
//
// # Content model
//
// An element holds either child elements or a single block of text
// content, never both.  Mutating operations check this at call time
// and fail with ErrStructure on violation.
//
// # Errors
//
// Failures surface as errors wrapping the package's sentinel values
// (ErrParse, ErrStructure, ErrAttribute, ErrConversion, ErrSerialize,
// ErrIO), so callers can branch with errors.Is.  The probe operations
// HasText and HasAttribute return booleans and never fail.
//
// This package is a synchronous, single-owner tree view: no internal
// locking, no namespace processing, no XPath.
package xml

// Package dom provides the in-memory tree representation for XML
// documents.
//
// # Overview
//
// All XML documents handled by this module (whether parsed from text
// or built programmatically) are represented as dom.Node trees.  The
// tree is a plain mutable structure with parent back-links; ownership
// and invariant enforcement (single root, content versus children
// exclusivity) live one level up, in the root xml package.
//
// # Node Structure
//
// A Node is a tagged union discriminated by Kind:
//
//   - ElementKind: a tag with attributes and ordered children
//   - TextKind: character data owned by its parent element
//   - CommentKind: a comment
//   - ProcInstKind: a processing instruction
//
// For ElementKind nodes, Children holds the ordered child nodes and
// Children[i].ParentIndex == i at all times; the mutation helpers
// (AppendChild, RemoveChildAt, Detach) maintain this.
//
// # Comparison
//
// Compare and Equal define a structural order over subtrees: kind,
// tag, attributes (order-insensitive), text and significant children.
// Comments and processing instructions are not significant for
// comparison.
package dom

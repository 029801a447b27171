package xml

import (
	"bytes"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/signadot/xml-format/go-xml/dom"
	"github.com/signadot/xml-format/go-xml/encode"
)

// Node is a lightweight handle on one element of a Document's tree.
// Nodes do not own storage: any number of Nodes may reference the
// same element, and navigation returns a fresh handle each call.
// A Node is valid only as long as its element remains in its
// Document's tree.
type Node struct {
	doc *Document
	el  *dom.Node
}

// Name returns the element's tag name.
func (n *Node) Name() string {
	return n.el.Name
}

// Parent returns the enclosing element's Node, or nil if n is the
// root.
func (n *Node) Parent() *Node {
	p := n.el.Parent
	if p == nil || p.Kind != dom.ElementKind {
		return nil
	}
	return &Node{doc: n.doc, el: p}
}

// AddChild creates an empty element named name and appends it as the
// last child.  An element holds either child elements or text
// content, never both, so this fails with ErrStructure if n currently
// holds text.
func (n *Node) AddChild(name string) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty element name", ErrStructure)
	}
	if _, ok := n.el.TextContent(); ok {
		return nil, fmt.Errorf("%w: <%s> has text content, cannot add child element", ErrStructure, n.el.Name)
	}
	c := dom.NewElement(name)
	n.el.AppendChild(c)
	return &Node{doc: n.doc, el: c}, nil
}

// AdoptChild attaches child's subtree as n's last child.  With copy
// unset the subtree is detached from its current position and moved
// here; a move is confined to a single document, and moving n into
// its own subtree fails with ErrStructure.  With copy set a deep
// duplicate is attached and the original stays where it is, so the
// source may belong to another document.  The returned Node
// references the attached subtree's root.
func (n *Node) AdoptChild(child *Node, copy bool) (*Node, error) {
	if child == nil {
		return nil, fmt.Errorf("%w: nil child", ErrStructure)
	}
	if _, ok := n.el.TextContent(); ok {
		return nil, fmt.Errorf("%w: <%s> has text content, cannot add child element", ErrStructure, n.el.Name)
	}
	el := child.el
	if copy {
		el = el.Clone()
	} else {
		// each document owns its tree exclusively; a move may not
		// leave two documents referencing one subtree
		if child.doc != n.doc {
			return nil, fmt.Errorf("%w: cannot move <%s> between documents", ErrStructure, el.Name)
		}
		if n.el.Within(el) {
			return nil, fmt.Errorf("%w: cannot move <%s> into its own subtree", ErrStructure, el.Name)
		}
		el.Detach()
	}
	n.el.AppendChild(el)
	return &Node{doc: n.doc, el: el}, nil
}

// RemoveChild detaches and discards child and its subtree.  It fails
// with ErrStructure if child is not a direct child of n.
func (n *Node) RemoveChild(child *Node) error {
	if child == nil || !n.el.RemoveChild(child.el) {
		return fmt.Errorf("%w: not a child of <%s>", ErrStructure, n.el.Name)
	}
	return nil
}

// HasText reports whether n holds text content.  It never fails;
// callers use it to distinguish "no text" from empty text.
func (n *Node) HasText() bool {
	_, ok := n.el.TextContent()
	return ok
}

// Text returns n's text content, or "" if none is present.
func (n *Node) Text() string {
	v, _ := n.el.TextContent()
	return v
}

// SetText replaces n's text content with content.  It fails with
// ErrStructure if n has child elements.
func (n *Node) SetText(content string) error {
	for _, c := range n.el.Children {
		if c.Kind == dom.ElementKind {
			return fmt.Errorf("%w: <%s> has child elements, cannot set text content", ErrStructure, n.el.Name)
		}
	}
	n.RemoveText()
	n.el.AppendChild(dom.NewText(content))
	return nil
}

// RemoveText deletes all text fragments directly under n in a single
// pass over the child list.  It is a no-op if none are present.
func (n *Node) RemoveText() {
	kept := n.el.Children[:0]
	for _, c := range n.el.Children {
		if c.Kind == dom.TextKind {
			c.Parent = nil
			continue
		}
		c.ParentIndex = len(kept)
		kept = append(kept, c)
	}
	n.el.Children = kept
}

// HasAttribute reports whether n carries the named attribute.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.el.Attr(name)
	return ok
}

// StringAttribute returns the named attribute's value.  An absent or
// empty attribute fails with ErrAttribute.
func (n *Node) StringAttribute(name string) (string, error) {
	v, ok := n.el.Attr(name)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %q on <%s>", ErrAttribute, name, n.el.Name)
	}
	return v, nil
}

// IntAttribute returns the named attribute parsed as a base-10 int.
func (n *Node) IntAttribute(name string) (int, error) {
	return n.IntAttributeBase(name, 10)
}

// IntAttributeBase returns the named attribute parsed as an int in
// the given base.  A present but unparseable value fails with
// ErrConversion.
func (n *Node) IntAttributeBase(name string, base int) (int, error) {
	s, err := n.StringAttribute(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, base, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("%w: attribute %q value %q is not an int", ErrConversion, name, s)
	}
	return int(v), nil
}

// Int64Attribute returns the named attribute parsed as a base-10
// int64.
func (n *Node) Int64Attribute(name string) (int64, error) {
	return n.Int64AttributeBase(name, 10)
}

// Int64AttributeBase returns the named attribute parsed as an int64
// in the given base.
func (n *Node) Int64AttributeBase(name string, base int) (int64, error) {
	s, err := n.StringAttribute(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: attribute %q value %q is not an int64", ErrConversion, name, s)
	}
	return v, nil
}

// Float32Attribute returns the named attribute parsed as a float32.
func (n *Node) Float32Attribute(name string) (float32, error) {
	s, err := n.StringAttribute(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: attribute %q value %q is not a float32", ErrConversion, name, s)
	}
	return float32(v), nil
}

// Float64Attribute returns the named attribute parsed as a float64.
func (n *Node) Float64Attribute(name string) (float64, error) {
	s, err := n.StringAttribute(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: attribute %q value %q is not a float64", ErrConversion, name, s)
	}
	return v, nil
}

// BoolAttribute returns the named attribute parsed as a bool.  The
// accepted literal forms are "true" and "false", case-insensitive,
// with surrounding whitespace ignored; numeric booleans fail with
// ErrConversion.
func (n *Node) BoolAttribute(name string) (bool, error) {
	s, err := n.StringAttribute(name)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: attribute %q value %q is not a bool", ErrConversion, name, s)
}

// SetAttribute stores value under name, creating the attribute if
// absent and overwriting it otherwise.  Booleans format as "true"
// and "false"; other values use their canonical string form.
func (n *Node) SetAttribute(name string, value any) {
	n.el.SetAttr(name, formatAttr(value))
}

func formatAttr(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// RemoveAttribute deletes the named attribute; it is a no-op if the
// attribute is absent.
func (n *Node) RemoveAttribute(name string) {
	n.el.RemoveAttr(name)
}

// Children returns a sequence over n's direct child elements in
// document order, skipping text and comment nodes.  Each call yields
// an independent cursor over the current child list; the sequence is
// not safe against structural mutation during iteration.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.el.Children {
			if c.Kind != dom.ElementKind {
				continue
			}
			if !yield(&Node{doc: n.doc, el: c}) {
				return
			}
		}
	}
}

// ChildCount returns the number of direct child elements.
func (n *Node) ChildCount() int {
	count := 0
	for range n.Children() {
		count++
	}
	return count
}

// Dump serializes the subtree rooted at n, without the XML
// declaration.  format selects indented layout over compact output.
func (n *Node) Dump(format bool) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n.el, buf, encode.EncodeIndent(format)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Equals reports structural equality of the subtrees n and other
// reference: same tag, attributes and text, with recursively equal
// children in the same order.  Handle identity does not matter.
func (n *Node) Equals(other *Node) bool {
	if other == nil {
		return false
	}
	return dom.Equal(n.el, other.el)
}

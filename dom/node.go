package dom

// Kind discriminates the kinds of nodes an XML tree can hold.
type Kind int

const (
	ElementKind Kind = iota
	TextKind
	CommentKind
	ProcInstKind
)

func (k Kind) String() string {
	switch k {
	case ElementKind:
		return "element"
	case TextKind:
		return "text"
	case CommentKind:
		return "comment"
	case ProcInstKind:
		return "procinst"
	}
	return "<unknown kind>"
}

// Attr is a single name="value" attribute.  Attrs keep document order
// so that re-encoding a parsed tree is stable.
type Attr struct {
	Name  string
	Value string
}

// Node is one node of an XML tree.  It works as a tagged union: which
// fields are meaningful depends on Kind.
//
// For ElementKind, Name is the tag, Attrs the attributes and Children
// the ordered child nodes.  For TextKind and CommentKind, Text holds
// the payload.  For ProcInstKind, Name is the target and Text the
// instruction body.
//
// Parent and ParentIndex are back-links maintained by AppendChild,
// RemoveChildAt and Detach; a detached node has Parent == nil.
type Node struct {
	Kind        Kind
	Parent      *Node
	ParentIndex int

	Name     string
	Attrs    []Attr
	Children []*Node

	Text string
}

func NewElement(name string) *Node {
	return &Node{Kind: ElementKind, Name: name}
}

func NewText(v string) *Node {
	return &Node{Kind: TextKind, Text: v}
}

func NewComment(v string) *Node {
	return &Node{Kind: CommentKind, Text: v}
}

func NewProcInst(target, inst string) *Node {
	return &Node{Kind: ProcInstKind, Name: target, Text: inst}
}

// AppendChild attaches c as the last child of n and fixes up the
// back-links.  c must be detached.
func (n *Node) AppendChild(c *Node) {
	c.Parent = n
	c.ParentIndex = len(n.Children)
	n.Children = append(n.Children, c)
}

// RemoveChildAt removes and returns the i'th child, shifting the
// remaining children down and renumbering their ParentIndex.
func (n *Node) RemoveChildAt(i int) *Node {
	c := n.Children[i]
	n.Children = append(n.Children[:i], n.Children[i+1:]...)
	for j := i; j < len(n.Children); j++ {
		n.Children[j].ParentIndex = j
	}
	c.Parent = nil
	c.ParentIndex = 0
	return c
}

// RemoveChild removes c from n's children, matching by identity.  It
// reports whether c was a direct child of n.
func (n *Node) RemoveChild(c *Node) bool {
	for i, cc := range n.Children {
		if cc == c {
			n.RemoveChildAt(i)
			return true
		}
	}
	return false
}

// Detach removes n from its parent, if it has one.
func (n *Node) Detach() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Within reports whether p is n or an ancestor of n.
func (n *Node) Within(p *Node) bool {
	for q := n; q != nil; q = q.Parent {
		if q == p {
			return true
		}
	}
	return false
}

// Root returns the topmost ancestor of n.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Clone returns a deep copy of n's subtree.  The copy is detached:
// its Parent is nil whatever n's parent was.
func (n *Node) Clone() *Node {
	res := &Node{}
	n.CloneTo(res)
	return res
}

// CloneTo deep-copies n's subtree into dst, wiring the copied
// children's back-links to their copied parents.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.Kind = n.Kind
	dst.Name = n.Name
	dst.Text = n.Text
	if n.Attrs != nil {
		dst.Attrs = make([]Attr, len(n.Attrs))
		copy(dst.Attrs, n.Attrs)
	}
	if n.Children != nil {
		dst.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			dstC := &Node{}
			c.CloneTo(dstC)
			dstC.Parent = dst
			dstC.ParentIndex = i
			dst.Children[i] = dstC
		}
	}
	return dst
}

// Attr returns the value of the named attribute and whether it is
// present.
func (n *Node) Attr(name string) (string, bool) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			return n.Attrs[i].Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, overwriting in place if present
// and appending otherwise.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// RemoveAttr deletes the named attribute if present and reports
// whether it was.
func (n *Node) RemoveAttr(name string) bool {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return true
		}
	}
	return false
}

// TextContent returns the first text child's payload and whether one
// exists.  An element with no text child is distinct from one whose
// text child is empty.
func (n *Node) TextContent() (string, bool) {
	for _, c := range n.Children {
		if c.Kind == TextKind {
			return c.Text, true
		}
	}
	return "", false
}

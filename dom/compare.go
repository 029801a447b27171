package dom

import (
	"cmp"
	"slices"
	"strings"
)

// Equal reports structural equality of the subtrees rooted at a and
// b: same kind, tag, attributes and text, with equal significant
// children in the same order.  Attribute order and node identity do
// not matter; comments and processing instructions do not participate.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing the subtrees rooted at a and b.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.  The
// order is arbitrary but total, so trees can be sorted and equality
// checked with a single walk.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	switch a.Kind {
	case TextKind, CommentKind:
		return strings.Compare(a.Text, b.Text)
	case ProcInstKind:
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Text, b.Text)
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := compareAttrs(a.Attrs, b.Attrs); c != 0 {
		return c
	}
	return compareChildren(a, b)
}

func compareAttrs(a, b []Attr) int {
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}
	as := slices.Clone(a)
	bs := slices.Clone(b)
	byName := func(x, y Attr) int { return strings.Compare(x.Name, y.Name) }
	slices.SortFunc(as, byName)
	slices.SortFunc(bs, byName)
	for i := range as {
		if c := strings.Compare(as[i].Name, bs[i].Name); c != 0 {
			return c
		}
		if c := strings.Compare(as[i].Value, bs[i].Value); c != 0 {
			return c
		}
	}
	return 0
}

func compareChildren(a, b *Node) int {
	ac := significantChildren(a)
	bc := significantChildren(b)
	n := min(len(ac), len(bc))
	for i := 0; i < n; i++ {
		if c := Compare(ac[i], bc[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ac), len(bc))
}

func significantChildren(n *Node) []*Node {
	res := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		switch c.Kind {
		case CommentKind, ProcInstKind:
			continue
		}
		res = append(res, c)
	}
	return res
}
